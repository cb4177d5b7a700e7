package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input    string `arg:"" optional:"" help:"HTML input file (defaults to stdin)"`
	Output   string `short:"o" help:"Write ADF JSON to a file (defaults to stdout)"`
	Indent   bool   `short:"i" help:"Indent the JSON output"`
	Sanitize bool   `short:"s" help:"Sanitize input HTML before conversion"`
	Hash     bool   `help:"Print a fingerprint of the output document to stderr"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`
}
