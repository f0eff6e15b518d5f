package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	edc "github.com/sqpp/edc-golang"
	"github.com/sqpp/edc-golang/internal/request"
)

// runJob executes job with the configured runner and prints its result.
func runJob(cmd *cobra.Command, job request.Job) error {
	e := envFrom(cmd)
	out := e.runner.Run(job)
	if err := out.Err(); err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), e.cfg.Output, out.Result)
}

// parityFlag returns the --parity value as the even_parity request field,
// or nil when the flag was not given.
func parityFlag(cmd *cobra.Command) (*bool, error) {
	if !cmd.Flags().Changed("parity") {
		return nil, nil
	}
	s, _ := cmd.Flags().GetString("parity")
	p, err := edc.ParsePolicy(s)
	if err != nil {
		return nil, err
	}
	even := p == edc.Even
	return &even, nil
}

func schemeCmd(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
	}
}

var vrcCmd = schemeCmd("vrc", "Vertical redundancy check (single parity bit)")

var vrcEncodeCmd = &cobra.Command{
	Use:   "encode <data>",
	Short: "Append a parity bit to data",
	Long: `Append a parity bit so the codeword has an even (default) or odd
number of ones.

Example:
  edc vrc encode 1011
  edc vrc encode 1011 --parity odd`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		even, err := parityFlag(cmd)
		if err != nil {
			return err
		}
		return runJob(cmd, request.Job{Scheme: request.SchemeVRC, Data: args[0], EvenParity: even})
	},
}

var vrcVerifyCmd = &cobra.Command{
	Use:   "verify <codeword>",
	Short: "Check the parity bit of a received codeword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		even, err := parityFlag(cmd)
		if err != nil {
			return err
		}
		return runJob(cmd, request.Job{Scheme: request.SchemeVRC, Op: request.OpVerify, Data: args[0], EvenParity: even})
	},
}

var lrcCmd = schemeCmd("lrc", "Longitudinal redundancy check (column parity)")

var lrcEncodeCmd = &cobra.Command{
	Use:   "encode <block>...",
	Short: "Compute the LRC row of equal-length blocks",
	Long: `Compute one parity bit per column across the blocks.

Example:
  edc lrc encode 11100111 11011101 00111001 10101001`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		even, err := parityFlag(cmd)
		if err != nil {
			return err
		}
		return runJob(cmd, request.Job{Scheme: request.SchemeLRC, DataBlocks: args, EvenParity: even})
	},
}

var lrcVerifyCmd = &cobra.Command{
	Use:   "verify --lrc <row> <block>...",
	Short: "Compare a received LRC row with the blocks",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		even, err := parityFlag(cmd)
		if err != nil {
			return err
		}
		row, _ := cmd.Flags().GetString("lrc")
		return runJob(cmd, request.Job{
			Scheme:     request.SchemeLRC,
			Op:         request.OpVerify,
			DataBlocks: args,
			LRC:        row,
			EvenParity: even,
		})
	},
}

var crcCmd = schemeCmd("crc", "Cyclic redundancy check by modulo-2 division")

var crcEncodeCmd = &cobra.Command{
	Use:   "encode <data>",
	Short: "Append the CRC remainder to data",
	Long: `Divide data padded with zeros by the generator and append the remainder.
The divisor is a bit string or a generator name (see "edc crc generators").

Example:
  edc crc encode 1101011011 --divisor 1011
  edc crc encode 1101011011 --divisor crc-8`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		divisor, _ := cmd.Flags().GetString("divisor")
		return runJob(cmd, request.Job{Scheme: request.SchemeCRC, Data: args[0], Divisor: divisor})
	},
}

var crcVerifyCmd = &cobra.Command{
	Use:   "verify <codeword>",
	Short: "Divide a received codeword and check for a zero remainder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		divisor, _ := cmd.Flags().GetString("divisor")
		return runJob(cmd, request.Job{Scheme: request.SchemeCRC, Op: request.OpVerify, Data: args[0], Divisor: divisor})
	},
}

var crcDivideCmd = &cobra.Command{
	Use:   "divide <dividend> <divisor>",
	Short: "Run a raw modulo-2 long division",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := edc.Divide(args[0], args[1])
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), envFrom(cmd).cfg.Output, res)
	},
}

// generatorInfo is one row of "crc generators".
type generatorInfo struct {
	Name    string `json:"name" yaml:"name"`
	Divisor string `json:"divisor" yaml:"divisor"`
	Degree  int    `json:"degree" yaml:"degree"`
}

var crcGeneratorsCmd = &cobra.Command{
	Use:   "generators",
	Short: "List the named generator polynomials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		names := edc.GeneratorNames()
		rows := make([]generatorInfo, 0, len(names))
		for _, name := range names {
			bits, err := edc.Generator(name)
			if err != nil {
				return err
			}
			rows = append(rows, generatorInfo{Name: name, Divisor: bits, Degree: len(bits) - 1})
		}

		format := envFrom(cmd).cfg.Output
		if format != formatText {
			return render(cmd.OutOrStdout(), format, rows)
		}
		for _, r := range rows {
			fmt.Fprintf(cmd.OutOrStdout(), "%-13s degree %2d  %s\n", r.Name, r.Degree, r.Divisor)
		}
		return nil
	},
}

var checksumCmd = schemeCmd("checksum", "1's-complement checksum")

var checksumEncodeCmd = &cobra.Command{
	Use:   "encode <data>",
	Short: "Compute the checksum of data split into blocks",
	Long: `Split data into blocks, add them with end-around carry and complement
the sum. Data is left-padded with zeros to a whole number of blocks.

Example:
  edc checksum encode 1001100100111001 --block-size 8`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetInt("block-size")
		return runJob(cmd, request.Job{Scheme: request.SchemeChecksum, Data: args[0], BlockSize: size})
	},
}

var checksumVerifyCmd = &cobra.Command{
	Use:   "verify <data+checksum>",
	Short: "Re-sum data with its checksum and check for zero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetInt("block-size")
		return runJob(cmd, request.Job{Scheme: request.SchemeChecksum, Op: request.OpVerify, Data: args[0], BlockSize: size})
	},
}

var hammingCmd = schemeCmd("hamming", "Hamming single-error-correcting code")

var hammingEncodeCmd = &cobra.Command{
	Use:   "encode <data>",
	Short: "Insert parity bits at the power-of-two positions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(cmd, request.Job{Scheme: request.SchemeHamming, Data: args[0]})
	},
}

var hammingVerifyCmd = &cobra.Command{
	Use:   "verify <codeword>",
	Short: "Compute the syndrome and correct a single-bit error",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJob(cmd, request.Job{Scheme: request.SchemeHamming, Op: request.OpVerify, Data: args[0]})
	},
}

func init() {
	for _, c := range []*cobra.Command{vrcEncodeCmd, vrcVerifyCmd, lrcEncodeCmd, lrcVerifyCmd} {
		c.Flags().String("parity", "even", "Parity policy: even or odd")
	}
	lrcVerifyCmd.Flags().String("lrc", "", "Received LRC row")

	for _, c := range []*cobra.Command{crcEncodeCmd, crcVerifyCmd} {
		c.Flags().StringP("divisor", "d", "", "Generator bits or name (default from config)")
	}
	for _, c := range []*cobra.Command{checksumEncodeCmd, checksumVerifyCmd} {
		c.Flags().IntP("block-size", "b", 0, "Block size in bits (default from config)")
	}

	vrcCmd.AddCommand(vrcEncodeCmd, vrcVerifyCmd)
	lrcCmd.AddCommand(lrcEncodeCmd, lrcVerifyCmd)
	crcCmd.AddCommand(crcEncodeCmd, crcVerifyCmd, crcDivideCmd, crcGeneratorsCmd)
	checksumCmd.AddCommand(checksumEncodeCmd, checksumVerifyCmd)
	hammingCmd.AddCommand(hammingEncodeCmd, hammingVerifyCmd)

	rootCmd.AddCommand(vrcCmd, lrcCmd, crcCmd, checksumCmd, hammingCmd)
}
