// flags.go - Command-line flag definitions and configuration
package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/lgbarn/mindflayer-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Print the final board of each game")
	showMoves    = flag.Bool("legal", false, "List the legal moves of each final position")
	noSummary    = flag.Bool("nosummary", false, "Don't print totals after all games")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games whose final position was already seen")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	outputDupsOnly     = flag.Bool("U", false, "Output only duplicates (suppress unique games)")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Ply bounds
	minPly    = flag.Int("minply", 0, "Minimum number of plies played")
	maxPly    = flag.Int("maxply", 0, "Maximum number of plies played (0 = no limit)")
	stopAfter = flag.Int("stopafter", 0, "Stop after reporting N games")

	// Ending filters
	checkmateFilter = flag.Bool("checkmate", false, "Only output games ending in checkmate")
	stalemateFilter = flag.Bool("stalemate", false, "Only output games ending in stalemate")
	checkFilter     = flag.Bool("check", false, "Only output games ending with the side to move in check")
	strictMode      = flag.Bool("strict", false, "Only output games whose moves were all played")

	// Position-based selection
	ecoFile            = flag.String("e", "", "Opening book file (CODE Name, Variation: moves)")
	ecoPrefix          = flag.String("Te", "", "Only output games whose opening code starts with this prefix (needs -e)")
	variationFile      = flag.String("v", "", "File with move sequences to match")
	positionFile       = flag.String("x", "", "File with positional variations to match")
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")
	fenMatch           = flag.String("fen", "", "Only output games reaching this position")
	fenPattern         = flag.String("pattern", "", "Only output games reaching a position matching this placement pattern")
	invertPattern      = flag.Bool("invert", false, "With -pattern, also match the colour-swapped pattern")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to this depth instead of replaying games")
	divide     = flag.Bool("divide", false, "With -perft, report counts per root move")
	parallel   = flag.Bool("parallel", false, "With -perft, search root moves in parallel")
	perftMoves = flag.String("moves", "", "With -perft, moves played from the initial position first")

	// Verification
	verifyMode = flag.Bool("verify", false, "Cross-check every position against independent move generators")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	logLevel  = flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error")
	verbose   = flag.Bool("verbose", false, "Log every game as it is replayed")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary, errors only)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	bufferSize = flag.Int("buffer", 64, "Worker queue length")

	// File input options
	fileListFile = flag.String("f", "", "File containing list of input files to process (one per line)")
	// Note: -A flag is handled manually before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one per line, # for comments)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyFilterFlags(cfg)
	applyDuplicateFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verify = *verifyMode
	cfg.Workers = *workers
	cfg.BufferSize = *bufferSize
	cfg.LogLevel = *logLevel

	switch {
	case *quiet:
		cfg.Verbosity = 0
		cfg.Output.Summary = false
		cfg.LogLevel = "error"
	case *verbose:
		cfg.Verbosity = 2
		cfg.LogLevel = "debug"
	}
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowMoves = *showMoves
	cfg.Output.Summary = !*noSummary
}

// applyFilterFlags configures game filter settings.
func applyFilterFlags(cfg *config.Config) {
	if *minPly > 0 || *maxPly > 0 {
		cfg.Filter.CheckPlyBounds = true
		cfg.Filter.MinPlies = uint(*minPly)
		cfg.Filter.MaxPlies = ^uint(0)
		if *maxPly > 0 {
			cfg.Filter.MaxPlies = uint(*maxPly)
		}
	}
	if *stopAfter > 0 {
		cfg.Filter.MaxMatches = uint(*stopAfter)
	}
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
	cfg.Filter.MatchCheck = *checkFilter
	cfg.Filter.KeepBrokenGames = !*strictMode
	cfg.Filter.ECOPrefix = *ecoPrefix
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.SuppressOriginals = *outputDupsOnly
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

// applyPerftFlags configures perft mode.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Parallel = *parallel
	cfg.Perft.Moves = strings.Fields(*perftMoves)
}

// loadArgsFromFileIfSpecified expands "-A file" in os.Args into the
// arguments listed in file.
func loadArgsFromFileIfSpecified() error {
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		if args[i] != "-A" || i+1 >= len(args) {
			continue
		}
		fileArgs, err := loadArgsFile(args[i+1])
		if err != nil {
			return err
		}
		expanded := make([]string, 0, len(args)+len(fileArgs))
		expanded = append(expanded, args[:i]...)
		expanded = append(expanded, fileArgs...)
		expanded = append(expanded, args[i+2:]...)
		os.Args = append(os.Args[:1], expanded...)
		return nil
	}
	return nil
}

// loadArgsFile reads arguments from a file. Blank lines and lines starting
// with # are skipped; quotes group words.
func loadArgsFile(name string) ([]string, error) {
	lines, err := readLines(name)
	if err != nil {
		return nil, err
	}
	var args []string
	for _, line := range lines {
		args = append(args, splitArgsLine(line)...)
	}
	return args, nil
}

// loadFileList reads input file names, one per line.
func loadFileList(name string) ([]string, error) {
	return readLines(name)
}

// readLines returns the trimmed lines of a file, skipping blank lines and
// # comments.
func readLines(name string) ([]string, error) {
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// splitArgsLine splits a line on blanks, keeping quoted text together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
