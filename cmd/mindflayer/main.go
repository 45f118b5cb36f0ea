// mindflayer replays chess games written as coordinate move lists through
// the rules engine, and counts move trees with perft.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/lgbarn/mindflayer-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	if err := loadArgsFromFileIfSpecified(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading argument file: %v\n", err)
		os.Exit(1)
	}

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("mindflayer version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log := newLogger(cfg.LogFile, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Perft.Enabled() {
		if err := runPerft(ctx, cfg, log); err != nil {
			log.Error().Err(err).Msg("perft failed")
			os.Exit(1)
		}
		if err := closeFiles(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	inputs, err := inputNames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileListFile, err)
		os.Exit(1)
	}

	proc := NewProcessor(cfg, log)
	if err := setupSelection(proc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	failed := processAllInputs(ctx, proc, inputs)
	if err := proc.Finish(); err != nil {
		log.Error().Err(err).Msg("writing output")
		os.Exit(1)
	}
	if err := closeFiles(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}

// newLogger builds a console logger at the named level.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// closeFiles closes the output, duplicate and log files opened from flags.
// The standard streams are left open. The first close error is returned.
func closeFiles(cfg *config.Config) error {
	var first error
	for _, w := range []io.Writer{cfg.OutputFile, cfg.Duplicate.DuplicateFile, cfg.LogFile} {
		f, ok := w.(*os.File)
		if !ok || f == os.Stdout || f == os.Stderr {
			continue
		}
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// inputNames returns the files named by -f and on the command line.
func inputNames() ([]string, error) {
	var names []string
	if *fileListFile != "" {
		listed, err := loadFileList(*fileListFile)
		if err != nil {
			return nil, err
		}
		names = append(names, listed...)
	}
	return append(names, flag.Args()...), nil
}

// processAllInputs processes all input files, or stdin when there are none.
// It returns true if any input could not be read completely.
func processAllInputs(ctx context.Context, proc *Processor, names []string) bool {
	if len(names) == 0 {
		return processNamed(ctx, proc, os.Stdin, "stdin")
	}

	failed := false
	for _, name := range names {
		if proc.Done() || ctx.Err() != nil {
			break
		}

		file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", name, err)
			failed = true
			continue
		}

		if processNamed(ctx, proc, file, name) {
			failed = true
		}
		file.Close() //nolint:errcheck,gosec // G104: read-only file
	}
	return failed
}

func processNamed(ctx context.Context, proc *Processor, r io.Reader, name string) bool {
	if err := proc.ProcessInput(ctx, r, name); err != nil {
		proc.log.Error().Err(err).Str("input", name).Msg("input not fully processed")
		return true
	}
	return false
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: mindflayer [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games written as coordinate moves (e2e4 e7e5 ...),\n")
	fmt.Fprintf(os.Stderr, "one game per line, and reports how each game ended.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPerft mode:\n")
	fmt.Fprintf(os.Stderr, "  mindflayer -perft 4 -divide -moves \"e2e4 e7e5\"\n")
}
