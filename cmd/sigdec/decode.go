package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/sigdec/internal/analysis"
	"github.com/nao1215/sigdec/internal/codec"
	"github.com/nao1215/sigdec/internal/report"
)

// NewDecodeCmd creates the decode command.
func NewDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [string]",
		Short: "Try every decoder against a string",
		Long: `Decode runs only the decoder bank and prints one row per decoder with
its status, the number of decoded bytes and a preview or the failure reason.

Without an argument, or with "-", the whole standard input is decoded as
one string (a single trailing line break is removed).

Examples:
  # Try all decoders
  sigdec decode 'aGVsbG8='

  # Only hexadecimal, as JSON
  echo 68656c6c6f | sigdec decode --codec hex --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDecodeCmd,
	}

	cmd.Flags().StringSlice("codec", nil,
		"Decoder to try (repeatable): base64, base64url, hex, percent, utf8, punycode")
	cmd.Flags().Int("preview-limit", codec.DefaultPreviewLimit,
		"Maximum bytes shown in decoded previews")
	cmd.Flags().BoolP("json", "j", false,
		"Output the attempts as JSON")
	cmd.Flags().String("color", report.ColorAuto,
		"Colour text output: auto, always or never")

	return cmd
}

// runDecodeCmd executes the decode command.
func runDecodeCmd(cmd *cobra.Command, args []string) error {
	names, err := cmd.Flags().GetStringSlice("codec")
	if err != nil {
		return err
	}
	codecs, err := codec.Select(names)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	previewLimit, err := cmd.Flags().GetInt("preview-limit")
	if err != nil {
		return err
	}
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}

	input, err := readSingleInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	analyzer := analysis.New(
		analysis.WithCodecs(codecs...),
		analysis.WithPreviewLimit(previewLimit),
	)
	attempts := analyzer.Decode(input)

	out := cmd.OutOrStdout()
	if jsonOutput {
		_, err = report.NewJSONWriter(out, report.WithPrettyPrint()).WriteValue(attempts)
	} else {
		w := report.NewSimpleWriter(out, report.WithColor(report.ColorEnabled(colorMode, out)))
		_, err = w.WriteAttempts(attempts)
	}
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
