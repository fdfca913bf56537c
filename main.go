package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/mcncl/jsonfmt/internal/config"
	"github.com/mcncl/jsonfmt/internal/encoder"
	"github.com/mcncl/jsonfmt/internal/errors"
	"github.com/mcncl/jsonfmt/internal/parser"
	"github.com/mcncl/jsonfmt/internal/value"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent      int    `help:"Number of spaces per indentation level." default:"2"`
	Color       string `help:"Colorize output: auto, always or never." enum:"auto,always,never" default:"auto"`
	KeyCase     string `help:"Rewrite object keys: none, camel, pascal, snake or kebab." name:"key-case" enum:"none,camel,pascal,snake,kebab" default:"none"`
	Config      string `help:"Path to a config file. Defaults to the nearest .jsonfmt.yml." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Logger log.Logger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	cliParser := kong.Must(&CLI,
		kong.Name("jsonfmt"),
		kong.Description("A gofmt-style pretty-printer for JSON"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	// Parse the command line arguments
	if _, err := cliParser.Parse(os.Args[1:]); err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsonfmt version %s\n", Version)
		return
	}

	err := run(&Context{Debug: CLI.Debug, Logger: newLogger(CLI.Debug)})
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonfmt --help\n")

		os.Exit(1)
	}
}

// newLogger builds the stderr logger. Debug lines are dropped unless
// --debug is set.
func newLogger(debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowWarn())
	}
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Resolve configuration: explicit path, else nearest config file
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Indent, CLI.Color, CLI.KeyCase)
	if err != nil {
		return err
	}
	level.Debug(ctx.Logger).Log(
		"msg", "configuration resolved",
		"config_file", configPath,
		"indent", cfg.Indent,
		"color", cfg.Color,
		"key_case", cfg.KeyCase,
	)

	// 2. Parse JSON input
	start := time.Now()
	root, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}
	level.Debug(ctx.Logger).Log("msg", "input parsed", "kind", root.Kind(), "duration", time.Since(start))

	// 3. Rewrite object keys if a key case is configured
	if cfg.TransformsKeys() {
		root = value.TransformKeys(root, cfg.TransformKey)
		level.Debug(ctx.Logger).Log("msg", "object keys rewritten", "key_case", cfg.KeyCase)
	}

	// 4. Render the tree
	var buf bytes.Buffer
	enc := encoder.NewEncoder(&buf)
	enc.SetIndent(cfg.IndentUnit())
	enc.SetPalette(paletteFor(cfg))
	if err := enc.Encode(root); err != nil {
		return err
	}
	level.Debug(ctx.Logger).Log("msg", "output rendered", "bytes", buf.Len())

	// 5. Output the result
	return writeOutput(buf.String())
}

// paletteFor maps the color mode to an encoder palette. In auto mode
// output is colored only when it goes straight to a terminal.
func paletteFor(cfg *config.Config) *encoder.Palette {
	switch cfg.Color {
	case config.ColorAlways:
		p := encoder.DefaultPalette()
		p.Force()
		return p
	case config.ColorAuto:
		if CLI.Output != "" {
			return nil
		}
		stdoutInfo, err := os.Stdout.Stat()
		if err != nil || (stdoutInfo.Mode()&os.ModeCharDevice) == 0 {
			return nil
		}
		return encoder.DefaultPalette()
	default:
		return nil
	}
}

// parseInput reads JSON from file or stdin
func parseInput() (value.Value, error) {
	if CLI.Input != "" {
		// Parse from file
		return parser.ParseFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			// Interactive mode
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.Parse(bytes.NewReader(jsonData))
}

// writeOutput writes formatted JSON to file or stdout
func writeOutput(doc string) error {
	if CLI.Output != "" {
		// Write to file, with the trailing newline the encoder leaves off
		err := os.WriteFile(CLI.Output, []byte(doc+"\n"), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Formatted JSON written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := fmt.Println(doc)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (value.Value, error) {
	fmt.Fprintln(os.Stderr, "jsonfmt Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// End of input
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
