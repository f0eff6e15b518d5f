package edc

import (
	"sort"
	"strings"
)

// Generator polynomials, written without the implicit x^degree term.
const (
	// BCH(31,21) as used by POCSAG: x^10+x^9+x^8+x^6+x^5+x^3+1
	BCH3121Poly = 0x769
	// G(x) = x^3+x+1
	CRC3Poly = 0x3
	// G(x) = x^4+x+1
	CRC4Poly = 0x3
	// G(x) = x^8+x^2+x+1
	CRC8Poly = 0x07
	// G(x) = x^9+x^6+x^4+x^3+1
	CRC9Poly = 0x59
	// G(x) = x^16+x^12+x^5+1
	CRC16Poly = 0x1021
	CRC32Poly = 0x04c11db7
)

type generator struct {
	poly   uint64
	degree int
}

var generators = map[string]generator{
	"bch-31-21":    {BCH3121Poly, 10},
	"crc-3":        {CRC3Poly, 3},
	"crc-4":        {CRC4Poly, 4},
	"crc-8":        {CRC8Poly, 8},
	"crc-9":        {CRC9Poly, 9},
	"crc-16-ccitt": {CRC16Poly, 16},
	"crc-32":       {CRC32Poly, 32},
}

// PolynomialBits renders a generator polynomial of the given degree as a
// divisor bit string, setting the x^degree term.
func PolynomialBits(poly uint64, degree int) string {
	return FormatBinary(poly|1<<uint(degree), degree+1)
}

// Generator returns the divisor bit string of a named polynomial.
func Generator(name string) (string, error) {
	g, ok := generators[strings.ToLower(name)]
	if !ok {
		return "", invalid("generator", name, ErrUnknownGenerator)
	}
	return PolynomialBits(g.poly, g.degree), nil
}

// GeneratorNames lists the known polynomial names in sorted order.
func GeneratorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveDivisor accepts either a generator name or a literal bit string.
func ResolveDivisor(s string) (string, error) {
	if _, ok := generators[strings.ToLower(s)]; ok {
		return Generator(s)
	}
	if _, err := parseGenerator(s); err != nil {
		return "", err
	}
	return s, nil
}
