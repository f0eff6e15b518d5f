// Package edc implements classical data-link error detection and correction
// codes over bit strings: vertical and longitudinal redundancy checks,
// cyclic redundancy checks by modulo-2 long division, the 1's-complement
// checksum with end-around carry, and single-error-correcting Hamming codes.
//
// Every operation returns a result struct carrying the derived redundancy,
// the codeword or verdict, and a step-by-step trace of the computation.
// Bit strings are plain strings of '0' and '1'. Invalid input yields a
// *ValidationError. All functions are pure and safe for concurrent use.
package edc
