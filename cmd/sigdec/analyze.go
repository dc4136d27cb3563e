package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/sigdec/internal/analysis"
	"github.com/nao1215/sigdec/internal/batch"
	"github.com/nao1215/sigdec/internal/config"
	"github.com/nao1215/sigdec/internal/log"
	"github.com/nao1215/sigdec/internal/model"
	"github.com/nao1215/sigdec/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [string...]",
		Short: "Analyze the characters, entropy and encodings of strings",
		Long: `Analyze decomposes each input into Unicode code points and reports:
- Character categories, entropy and printable ratio
- The most frequent characters
- Repeating fragments
- Heuristic insights (hex digests, UUIDs, Base64, identifiers ...)
- The result of every decoder (Base64, hex, percent-encoding, Punycode)

Inputs come from the arguments, from a file with one input per line (--list)
or from standard input, one input per line, when no argument or "-" is given.

Examples:
  # Analyze a single string
  sigdec analyze 'SGVsbG8gV29ybGQ='

  # Analyze several strings concurrently
  sigdec analyze --batch 8 token1 token2 token3

  # Analyze every line of a file and write a Markdown report
  sigdec analyze --list tokens.txt --markdown -o report.md

  # Read from standard input and print JSON
  printf 'abc\n' | sigdec analyze --json

  # Use the "long" profile of the config file
  sigdec analyze -p long "$(cat message.txt)"`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Analysis flags
	cmd.Flags().IntP("top", "n", config.DefaultTop,
		"Number of rows in the frequency table (0 shows all)")
	cmd.Flags().Int("min-pattern", analysis.DefaultMinPatternLength,
		"Minimum length of reported repeating fragments")
	cmd.Flags().Int("max-patterns", analysis.DefaultMaxPatterns,
		"Maximum number of reported repeating fragments (0 disables detection)")
	cmd.Flags().Int("preview-limit", config.DefaultAnalysis().PreviewLimit,
		"Maximum bytes shown in decoded previews")
	cmd.Flags().StringSlice("codec", nil,
		"Decoder to try (repeatable): base64, base64url, hex, percent, utf8, punycode")

	// Input flags
	cmd.Flags().StringP("list", "l", "",
		"Read inputs from a file, one per line")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of inputs analyzed concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .sigdec.yaml in current, XDG config or home directory)")
	cmd.Flags().StringP("profile", "p", "",
		"Named profile from the configuration file")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().String("color", config.ColorAuto,
		"Colour text output: auto, always or never")
	cmd.Flags().Bool("characters", false,
		"Include the per code point table in text output")

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, configPath, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)
	if configPath != "" {
		logger.Debug("configuration file loaded", "path", configPath, "profile", cfg.Profile)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runAnalyze(ctx, cmd.OutOrStdout(), cfg, logger)
}

// buildConfig creates a Config from the configuration file and the flags.
// Flags that were set explicitly override the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	flags := cmd.Flags()
	var err error

	if cfg.ConfigFilePath, err = flags.GetString("config"); err != nil {
		return nil, "", err
	}
	if cfg.Profile, err = flags.GetString("profile"); err != nil {
		return nil, "", err
	}
	configPath, err := cfg.ApplyConfigFile()
	if err != nil {
		return nil, "", err
	}

	intFlags := map[string]*int{
		"min-pattern":   &cfg.Analysis.MinPatternLength,
		"preview-limit": &cfg.Analysis.PreviewLimit,
		"batch":         &cfg.BatchSize,
	}
	for name, dst := range intFlags {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetInt(name); err != nil {
			return nil, "", err
		}
	}
	optionalFlags := map[string]**int{
		"top":          &cfg.Analysis.Top,
		"max-patterns": &cfg.Analysis.MaxPatterns,
	}
	for name, dst := range optionalFlags {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return nil, "", err
		}
		*dst = config.IntPtr(v)
	}

	if flags.Changed("codec") {
		if cfg.Analysis.Codecs, err = flags.GetStringSlice("codec"); err != nil {
			return nil, "", err
		}
	}
	if cfg.Color, err = flags.GetString("color"); err != nil {
		return nil, "", err
	}
	if cfg.ShowCharacters, err = flags.GetBool("characters"); err != nil {
		return nil, "", err
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, "", err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, "", err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, "", err
	}
	if cfg.ListFile, err = flags.GetString("list"); err != nil {
		return nil, "", err
	}

	cfg.Inputs, err = collectInputs(cmd.InOrStdin(), args, cfg.ListFile != "")
	if err != nil {
		return nil, "", err
	}
	return cfg, configPath, nil
}

// collectInputs returns the positional inputs. A lone "-", or no argument
// at all while stdin is not a terminal, reads one input per stdin line.
func collectInputs(stdin io.Reader, args []string, hasList bool) ([]string, error) {
	readStdin := len(args) == 1 && args[0] == "-"
	if len(args) == 0 && !hasList {
		readStdin = !isTerminal(stdin)
	}
	if !readStdin {
		return args, nil
	}

	lines, err := batch.ReadLines(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read standard input: %w", err)
	}
	return lines, nil
}

// runAnalyze analyzes every input and writes the report.
func runAnalyze(ctx context.Context, stdout io.Writer, cfg *config.Config, logger *slog.Logger) error {
	inputs := cfg.Inputs
	if cfg.ListFile != "" {
		lines, err := readListFile(cfg.ListFile)
		if err != nil {
			return err
		}
		inputs = append(inputs, lines...)
	}
	if len(inputs) == 0 {
		return config.ErrNoInput
	}

	opts, err := cfg.Analysis.AnalyzerOptions()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	opts = append(opts,
		analysis.WithCache(config.DefaultCacheSize),
		analysis.WithLogger(logger),
	)
	analyzer := analysis.New(opts...)

	processor := batch.NewProcessor(analyzer,
		batch.WithConcurrency(cfg.BatchSize),
		batch.WithLogger(logger),
	)
	reports, err := processor.Process(ctx, inputs)
	if err != nil {
		return fmt.Errorf("analysis interrupted: %w", err)
	}

	stats := analyzer.CacheStats()
	logger.Debug("analysis finished",
		"count", len(reports),
		"cacheEntries", stats.Entries,
		"cacheHits", stats.Hits,
	)

	return outputReports(stdout, cfg, reports)
}

// readListFile reads one input per line from path.
func readListFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open input list: %w", err)
	}
	defer f.Close()

	lines, err := batch.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read input list %s: %w", path, err)
	}
	return lines, nil
}

// outputReports writes reports in the requested format. A single report
// is written on its own, several as a batch.
func outputReports(stdout io.Writer, cfg *config.Config, reports []*model.Report) error {
	output := stdout
	if cfg.ReportFile != "" {
		f, err := createReportFile(cfg.ReportFile)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	}

	writer := newReportWriter(output, cfg)
	var err error
	if len(reports) == 1 {
		_, err = writer.Write(reports[0])
	} else {
		_, err = writer.WriteBatch(reports)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// newReportWriter selects the writer for the configured format.
func newReportWriter(output io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output,
			report.WithPrettyPrint(),
			report.WithVersion(getVersion()),
		)
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output, report.WithMarkdownTop(cfg.Analysis.TopValue()))
	default:
		return report.NewSimpleWriter(output,
			report.WithTop(cfg.Analysis.TopValue()),
			report.WithCharacters(cfg.ShowCharacters),
			report.WithColor(report.ColorEnabled(cfg.Color, output)),
		)
	}
}
