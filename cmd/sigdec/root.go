package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for sigdec.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sigdec",
		Short: "Inspect the characters and encodings of a string",
		Long: `sigdec decomposes strings into Unicode code points and reports what they are made of.

For every input it shows character categories, Shannon entropy, the most
frequent characters, repeating fragments, heuristic insights (digests, UUIDs,
Base64, identifiers ...) and the result of decoding the input as Base64,
hexadecimal, URL percent-encoding and Punycode.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewDecodeCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag reads the global verbose flag from cmd or its root.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
