package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmladf"
	"github.com/fwojciec/htmladf/bluemonday"
	"github.com/fwojciec/htmladf/goquery"
	adfslog "github.com/fwojciec/htmladf/slog"
)

func main() {
	m := NewMain()

	if err := m.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmladf"),
		kong.Description("Convert HTML to Atlassian Document Format JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	input, err := readInput(cli.Input, stdin)
	if err != nil {
		return err
	}
	if cli.Sanitize {
		input = bluemonday.NewSanitizer().Sanitize(input)
	}

	var converter htmladf.Converter = goquery.NewConverter()
	converter = adfslog.NewLoggingConverter(converter, logger)

	doc, err := converter.Convert(input)
	if err != nil {
		return err
	}

	var data []byte
	if cli.Indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	out := stdout
	if cli.Output != "" {
		f, err := os.Create(cli.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if _, err := fmt.Fprintln(out, string(data)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cli.Hash {
		fmt.Fprintf(stderr, "%016x\n", doc.Fingerprint())
	}
	return nil
}

// readInput reads HTML from the input file, or stdin when no file is given.
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return string(data), nil
}
