package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqpp/edc-golang/internal/request"
)

var batchCmd = &cobra.Command{
	Use:   "batch <jobs-file>",
	Short: "Run a list of encode and verify jobs from a YAML or JSON file",
	Long: `Run every job in a YAML or JSON file and print the outcomes in order.
Each job names a scheme (vrc, lrc, crc, checksum, hamming), an op (encode or
verify) and the fields of that scheme's request.

Example file:
  - name: frame
    scheme: crc
    data: "1101011011"
    divisor: crc-3
  - scheme: hamming
    op: verify
    data: "0110111"

Example:
  edc batch jobs.yaml --workers 8 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := envFrom(cmd)

		jobs, err := request.LoadJobs(args[0])
		if err != nil {
			return err
		}

		runner := e.runner
		if cmd.Flags().Changed("workers") {
			workers, _ := cmd.Flags().GetInt("workers")
			runner = request.NewRunner(e.logger, e.runner.Defaults(), workers)
		}

		outcomes, err := runner.RunAll(cmd.Context(), jobs)
		if err != nil {
			return fmt.Errorf("batch interrupted: %w", err)
		}
		if err := render(cmd.OutOrStdout(), e.cfg.Output, outcomes); err != nil {
			return err
		}

		var failed int
		var first error
		for _, o := range outcomes {
			if o.Err() != nil {
				failed++
				if first == nil {
					first = o.Err()
				}
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d jobs failed, first: %w", failed, len(outcomes), first)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntP("workers", "w", 0, "Concurrent jobs (default from config)")
}
