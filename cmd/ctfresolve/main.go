package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/geofffranks/yaml"
	"github.com/mattn/go-isatty"
	goutilsansi "github.com/starkandwayne/goutils/ansi"
	"github.com/voxelbrain/goptions"

	"github.com/antmicro/ctfresolve/internal/utils/ansi"
	"github.com/antmicro/ctfresolve/log"
	"github.com/antmicro/ctfresolve/pkg/ctf"
	"github.com/antmicro/ctfresolve/pkg/ctf/resolver"
)

// Version holds the current version of ctfresolve.
var Version = "(development)"

var printfStdOut = func(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

var getopts = func(o interface{}) {
	if err := goptions.Parse(o); err != nil {
		usage()
	}
}

var exit = func(code int) {
	os.Exit(code)
}

var usage = func() {
	goptions.PrintHelp()
	exit(1)
}

func envFlag(varname string) bool {
	val := os.Getenv(varname)
	return val != "" && strings.ToLower(val) != "false" && val != "0"
}

type resolveOpts struct {
	Format string             `goptions:"--format, description='Output format: yaml or json (default: json for a .json input file; otherwise yaml)'"`
	Out    string             `goptions:"-o, --out, description='Write the annotated trace class here instead of stdout'"`
	Help   bool               `goptions:"--help, -h"`
	Files  goptions.Remainder `goptions:"description='Trace class documents to resolve'"`
}

type checkOpts struct {
	Format string             `goptions:"--format, description='Not used by check: the document is parsed the same way whatever its value'"`
	Help   bool               `goptions:"--help, -h"`
	Files  goptions.Remainder `goptions:"description='Trace class documents to check'"`
}

func main() {
	var options struct {
		Debug   bool   `goptions:"-D, --debug, description='Enable debugging'"`
		Trace   bool   `goptions:"-T, --trace, description='Enable trace mode debugging (very verbose)'"`
		Version bool   `goptions:"-v, --version, description='Display version information'"`
		Color   string `goptions:"--color, description='Control color output (on/off/auto, default: auto)'"`
		Action  goptions.Verbs
		Resolve resolveOpts `goptions:"resolve"`
		Check   checkOpts   `goptions:"check"`
	}
	getopts(&options)

	if envFlag("DEBUG") || options.Debug {
		log.DebugOn = true
	}
	if envFlag("TRACE") || options.Trace {
		log.TraceOn = true
		log.DebugOn = true
	}

	if options.Resolve.Help || options.Check.Help {
		usage()
		return
	}

	if options.Version {
		printfStdOut("%s - Version %s\n", os.Args[0], Version)
		exit(0)
		return
	}

	var shouldEnableColor bool
	switch options.Color {
	case "on":
		shouldEnableColor = true
	case "off":
		shouldEnableColor = false
	case "auto", "":
		shouldEnableColor = isatty.IsTerminal(os.Stderr.Fd())
	default:
		log.PrintfStdErr("Invalid --color option: %s. Must be 'on', 'off', or 'auto'.\n", options.Color)
		exit(1)
		return
	}
	ansi.Color(shouldEnableColor)

	switch options.Action {
	case "resolve":
		if err := cmdResolve(options.Resolve); err != nil {
			log.PrintfStdErr("%s\n", err.Error())
			exit(2)
			return
		}
	case "check":
		ok, err := cmdCheck(options.Check)
		if err != nil {
			log.PrintfStdErr("%s\n", err.Error())
			exit(2)
			return
		}
		if !ok {
			exit(1)
			return
		}
	default:
		usage()
		return
	}
	exit(0)
}

func readInput(files []string) ([]byte, error) {
	if len(files) != 1 {
		return nil, goutilsansi.Errorf("@R{Exactly one trace class document is required}, got %d", len(files))
	}
	if files[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		return nil, goutilsansi.Errorf("@R{Error reading file} @m{%s}: %s", files[0], err.Error())
	}
	return data, nil
}

func cmdResolve(opts resolveOpts) error {
	data, err := readInput(opts.Files)
	if err != nil {
		return err
	}

	trace, err := decodeTraceClass(data)
	if err != nil {
		return err
	}

	if err := resolver.Resolve(trace); err != nil {
		return err
	}

	out, err := encodeTraceClass(trace, outputFormat(opts.Format, opts.Files))
	if err != nil {
		return err
	}

	if opts.Out == "" || opts.Out == "-" {
		printfStdOut("%s\n", out)
		return nil
	}
	return os.WriteFile(opts.Out, []byte(out), 0644)
}

func cmdCheck(opts checkOpts) (bool, error) {
	data, err := readInput(opts.Files)
	if err != nil {
		return false, err
	}

	trace, err := decodeTraceClass(data)
	if err != nil {
		return false, err
	}

	if err := resolver.Resolve(trace); err != nil {
		printfStdOut("FAIL: %s\n", err)
		return false, nil
	}

	printfStdOut("OK\n")
	return true, nil
}

func outputFormat(explicit string, files []string) string {
	if explicit != "" {
		return explicit
	}
	if len(files) == 1 && strings.HasSuffix(files[0], ".json") {
		return "json"
	}
	return "yaml"
}

func encodeTraceClass(trace *ctf.TraceClass, format string) (string, error) {
	if format == "json" {
		out, err := json.MarshalIndent(trace, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding trace class as JSON: %w", err)
		}
		return string(out), nil
	}

	out, err := yaml.Marshal(trace)
	if err != nil {
		return "", fmt.Errorf("encoding trace class as YAML: %w", err)
	}
	return string(out), nil
}
