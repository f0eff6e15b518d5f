package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	edc "github.com/sqpp/edc-golang"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if full, _ := cmd.Flags().GetBool("full"); full {
			fmt.Fprint(cmd.OutOrStdout(), edc.GetFullVersionInfo())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), edc.GetVersionString())
		fmt.Fprintln(cmd.OutOrStdout(), edc.GetBinaryInfo())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("full", false, "Include build time and commit")
}
