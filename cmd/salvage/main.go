package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/bamsammich/salvage/internal/config"
	"github.com/bamsammich/salvage/internal/engine"
	"github.com/bamsammich/salvage/internal/event"
	"github.com/bamsammich/salvage/internal/recovery"
	"github.com/bamsammich/salvage/internal/stats"
	"github.com/bamsammich/salvage/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}))
}

// streams are the process's standard streams, swappable in tests.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

type options struct {
	verbose     bool
	quiet       bool
	showVersion bool
	zeroFill    bool
	bwLimitStr  string
	logFile     string
}

func run(args []string, s streams) int {
	rootCmd := newRootCmd(s)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(s.err, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(s streams) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "salvage [flags] <input> <output> [chunk-size] [start-offset] [end-offset]",
		Short: "Copy a file off failing media, chunk by chunk, retrying or zero-filling unreadable regions",
		Long: `salvage copies <input> to <output> in fixed-size chunks. When a chunk
cannot be read it asks whether to retry, fill that chunk with zeros, or
fill every further unreadable chunk with zeros.

Sizes and offsets are in bytes and accept K, M, G and T suffixes.
chunk-size defaults to 1000000.`,
		Args:          cobra.MaximumNArgs(5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(s.out, "salvage %s\n", version)
				return nil
			}
			if len(args) < 2 {
				cmd.SetOut(s.out)
				return cmd.Usage()
			}
			return runRecovery(cmd, args, opts, s)
		},
	}

	// Positionals are file names; keep "completion" free for them.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetIn(s.in)
	rootCmd.SetErr(s.err)

	rootCmd.Flags().BoolVar(&opts.showVersion, "version", false, "print version and exit")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress narration; prompts and errors are still shown")
	rootCmd.Flags().
		BoolVar(&opts.zeroFill, "zero-fill", false, "never prompt; fill every unreadable chunk with zeros")
	rootCmd.Flags().
		StringVar(&opts.bwLimitStr, "bwlimit", "", "limit reads from the input (e.g. 10M, 512K)")
	rootCmd.Flags().
		StringVar(&opts.logFile, "log", "", "write structured JSON log to FILE")

	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

//nolint:revive // cognitive-complexity: wires config, logging and the engine in one place
func runRecovery(cmd *cobra.Command, args []string, opts options, s streams) error {
	cfg, loadErr := config.Load()
	applyConfigDefaults(cmd, cfg.Defaults, &opts)
	ui.ApplyTheme(cfg.Theme)

	defaultChunk := config.DefaultChunkSize
	if cfg.Defaults.ChunkSize != nil {
		n, err := config.ParseSize(*cfg.Defaults.ChunkSize)
		if err != nil {
			return fmt.Errorf("config %s: chunk_size: %w", config.Path(), err)
		}
		defaultChunk = n
	}

	// Configure logging.
	logLevel := slog.LevelWarn
	if opts.verbose {
		logLevel = slog.LevelDebug
	} else if !opts.quiet {
		logLevel = slog.LevelInfo
	}
	textHandler := slog.NewTextHandler(s.err, &slog.HandlerOptions{Level: logLevel})
	var logHandler slog.Handler = textHandler
	if opts.logFile != "" {
		lf, lfErr := os.Create(opts.logFile)
		if lfErr != nil {
			return fmt.Errorf("open log file: %w", lfErr)
		}
		defer lf.Close()
		jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{Level: slog.LevelDebug})
		logHandler = ui.NewMultiHandler(textHandler, jsonHandler)
	}
	logger := slog.New(logHandler).With("session", uuid.NewString())
	slog.SetDefault(logger)
	if loadErr != nil {
		slog.Warn("failed to load config", "path", config.Path(), "error", loadErr)
	}

	in, err := config.ParseArgs(args, defaultChunk)
	if err != nil {
		return err
	}
	session, err := config.New(in)
	if err != nil {
		return err
	}

	var limiter *rate.Limiter
	if opts.bwLimitStr != "" {
		bw, err := config.ParseSize(opts.bwLimitStr)
		if err != nil {
			return fmt.Errorf("invalid --bwlimit: %w", err)
		}
		if bw <= 0 {
			return errors.New("invalid --bwlimit: must be positive")
		}
		limiter = engine.NewBWLimiter(bw)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collector := stats.NewCollector()
	styled := ui.IsTerminalWriter(s.err)
	presenter := ui.NewPresenter(ui.Config{
		Writer:    s.out,
		ErrWriter: s.err,
		Stats:     collector,
		IsTTY:     styled,
		Quiet:     opts.quiet,
		Verbose:   opts.verbose,
	})

	// With --log, mirror every event into the structured log.
	var sink event.Sink = presenter
	if opts.logFile != "" {
		sink = event.Tee(presenter, ui.NewLogSink(logger))
	}

	mode := recovery.AskEachTime
	if opts.zeroFill {
		mode = recovery.AlwaysZeroFill
	}
	prompter := recovery.NewPrompter(s.in, s.out).WithStyle(ui.PromptStyle(ui.IsTerminalWriter(s.out)))

	end, bounded := session.EndOffset()
	slog.Debug("starting recovery",
		"input", session.Input(),
		"output", session.Output(),
		"chunk_size", session.ChunkSize(),
		"start", session.StartOffset(),
		"end", end,
		"bounded", bounded,
		"mode", mode,
	)

	result := engine.Run(ctx, engine.Config{
		Session: session,
		Policy:  recovery.NewPolicy(prompter, mode),
		Events:  sink,
		Stats:   collector,
		Limiter: limiter,
	})

	if result.NoOp {
		return nil
	}

	if result.Err == nil && !opts.quiet {
		if summary := presenter.Summary(); summary != "" {
			fmt.Fprintln(s.err, summary)
		}
	}
	slog.Debug("recovery stats", "stats", result.Stats.String())

	if result.TrailingWriteErr != nil {
		slog.Warn("output may be incomplete", "error", result.TrailingWriteErr)
	}
	if result.Err != nil {
		slog.Error("recovery failed", "chunk", result.Chunks, "error", result.Err)
		return &exitError{code: 1}
	}
	return nil
}

// applyConfigDefaults applies config file defaults for flags not explicitly set on the CLI.
func applyConfigDefaults(cmd *cobra.Command, defaults config.DefaultsConfig, opts *options) {
	if !cmd.Flags().Changed("zero-fill") && defaults.ZeroFill != nil {
		opts.zeroFill = *defaults.ZeroFill
	}
	if !cmd.Flags().Changed("bwlimit") && defaults.BWLimit != nil {
		opts.bwLimitStr = *defaults.BWLimit
	}
	if !cmd.Flags().Changed("log") && defaults.Log != nil {
		opts.logFile = *defaults.Log
	}
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}
