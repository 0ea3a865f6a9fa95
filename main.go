package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/ssgreg/logf"
	"github.com/ssgreg/logftext"
)

const (
	outputAlfred = "alfred"
	outputText   = "text"
)

var (
	// Version is set at build time with -ldflags "-X main.version=<version>".
	version = "dev"
)

func main() {
	cmd := newRootCommand(os.Stdout, os.Stderr)
	cmd.SetHelpTemplate(helpTemplate)

	err := cmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "tsconv failed: %s\n", err.Error())
		os.Exit(1)
	}
}

type rootOptions struct {
	query       string
	output      string
	coloredLogs string
	strict      bool
	millisMode  string
	debug       bool

	stdout io.Writer
	stderr io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := rootOptions{stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "tsconv [OPTIONS]",
		Short:         description,
		Example:       example,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		Version:       version,

		// Flags are parsed in RunE so that unknown ones can be skipped.
		DisableFlagParsing: true,
	}
	cmd.SetOutput(stdout)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.query, "query", "q", "", `Timestamp in seconds or milliseconds, or a UTC+8 date "2006-01-02[ 15:04:05]".`)
	flags.StringVarP(&opts.output, "output", "o", outputAlfred, `Output format ("alfred"|"text").`)
	flags.StringVar(&opts.coloredLogs, "color", "auto", `Show colored text output ("always"|"never"|"auto"). --color= is the same as --color=always.`)
	flags.BoolVar(&opts.strict, "strict", false, `Fail on unparsable dates and unsupported timestamp lengths instead of falling back.`)
	flags.StringVar(&opts.millisMode, "ms-mode", string(MillisSlice), `Interpretation of 13-digit timestamps ("slice"|"arithmetic").`)
	flags.BoolVar(&opts.debug, "debug", false, `Log debug messages to the standard error.`)
	showVersion := flags.BoolP("version", "v", false, "Print version information and exit.")
	showHelp := flags.BoolP("help", "h", false, "Print this help and exit.")
	flags.ParseErrorsWhitelist.UnknownFlags = true

	// Positional arguments and unknown flags are ignored.
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := flags.Parse(args)
		if err != nil {
			return err
		}

		switch {
		case *showHelp:
			return cmd.Help()
		case *showVersion:
			_, err = fmt.Fprintf(opts.stdout, "tsconv version %s\n", version)

			return err
		}

		return runRoot(opts)
	}

	return cmd
}

func runRoot(opts rootOptions) error {
	level := logf.LevelWarn
	if opts.debug {
		level = logf.LevelDebug
	}
	logger, closeLogger := newLogger(opts.stderr, level)
	defer closeLogger()

	mode, err := handleMillisMode(opts.millisMode)
	if err != nil {
		return err
	}

	conv := Converter{
		Strict:     opts.strict,
		MillisMode: mode,
		Offset:     localOffset,
		Logger:     logger,
	}
	t, err := conv.Convert(opts.query)
	if err != nil {
		return err
	}

	pairs := Formatter{Layout: outputLayout, Offset: localOffset}.Format(t)

	switch strings.ToLower(opts.output) {
	case outputAlfred:
		return writeAlfred(opts.stdout, pairs)
	case outputText:
		buf := logf.NewBufferWithCapacity(256)
		appendText(buf, logftext.EscapeSequence{NoColor: handleColorOption(opts.stdout, opts.coloredLogs)}, pairs)
		_, err = opts.stdout.Write(buf.Data)

		return err
	default:
		return errors.Errorf("unknown output format %q", opts.output)
	}
}

// handleColorOption handles 'color' option for output written to w. It
// returns true if colored output should be turned off.
func handleColorOption(w io.Writer, coloredLogs string) bool {
	force := false

	switch strings.ToLower(coloredLogs) {
	case "never":
		return true

	case "always", "":
		force = true

		fallthrough

	default:
		ok := false
		if f, isFile := w.(*os.File); isFile {
			ok = logftext.EnableSeqTTY(f, true)
		}

		return !force && (!ok || logftext.CheckNoColor())
	}
}

// handleMillisMode handles 'ms-mode' option.
func handleMillisMode(mode string) (MillisMode, error) {
	switch m := MillisMode(strings.ToLower(mode)); m {
	case MillisSlice, MillisArithmetic:
		return m, nil
	default:
		return "", errors.Errorf("unknown milliseconds mode %q", mode)
	}
}

const (
	description = `
Converts a timestamp or a date to milliseconds, UTC+8 and UTC representations.

A query of 9 or 13 digits is read as seconds or milliseconds since the Unix epoch,
any other number as seconds. Anything else is read as a UTC+8 date "2006-01-02" or
date-time "2006-01-02 15:04:05". The result is written to the standard output as
Alfred script filter items.`

	example = `
  The command:

  	tsconv -q 1664861094

  will print the 1664861094000, 2022-10-04 13:24:54 and 2022-10-04 05:24:54 items.

  The command:

  	tsconv -o text -q "2022-10-04 13:24:54"

  will print the same three values as 'label=value' lines.`

	helpTemplate = `Usage: {{.Use}}
{{.Short}}

Examples:{{.Example}}

Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
`
)
