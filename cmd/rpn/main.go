// Command rpn evaluates reverse Polish expressions from the command line,
// a file, standard input or an interactive prompt.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/log"
	"git.sr.ht/~sircmpwn/getopt"

	"rpn"
)

const usage = `usage: rpn [options]

options:
  -c FILE        configuration file (default $HOME/.rpn.yaml)
  -s             strict variables: unknown $names are an error
  -t             trace every token
  -v LEVEL       log level (debug, verbose, info, warning, error)
  -D NAME=VALUE  set a variable, may be repeated
  -j FILE        load variables from a JSON document
  -q QUERY       jq query selecting the object within the -j document
  -e EXPR        evaluate EXPR, may be repeated
  -f FILE        evaluate each line of FILE (- for standard input)
  -h             print this help

with neither -e nor -f, an interactive prompt starts when standard input is a
terminal, otherwise standard input is evaluated line by line.`

type options struct {
	exprs      []string
	file       string
	configPath string
	strict     bool
	trace      bool
	logLevel   string
	defines    []string
	jsonFile   string
	jsonQuery  string
	help       bool
}

func parseArgs(args []string) (*options, error) {
	opts, optind, err := getopt.Getopts(args, "c:D:e:f:hj:q:stv:")
	if err != nil {
		return nil, err
	}
	if optind < len(args) {
		return nil, fmt.Errorf("unexpected argument %q", args[optind])
	}

	o := &options{}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			o.configPath = opt.Value
		case 'D':
			o.defines = append(o.defines, opt.Value)
		case 'e':
			o.exprs = append(o.exprs, opt.Value)
		case 'f':
			o.file = opt.Value
		case 'h':
			o.help = true
		case 'j':
			o.jsonFile = opt.Value
		case 'q':
			o.jsonQuery = opt.Value
		case 's':
			o.strict = true
		case 't':
			o.trace = true
		case 'v':
			o.logLevel = opt.Value
		}
	}
	if o.file != "" && len(o.exprs) > 0 {
		return nil, fmt.Errorf("-e and -f are mutually exclusive")
	}
	return o, nil
}

// parseDefine splits a -D argument into a variable name and value.
func parseDefine(def string) (string, rpn.Value, error) {
	name, raw, ok := strings.Cut(def, "=")
	name = strings.TrimPrefix(strings.TrimSpace(name), string(rpn.VariableSigil))
	if !ok || name == "" {
		return "", 0, fmt.Errorf("bad define %q, want name=value", def)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil {
		return "", 0, fmt.Errorf("bad value in define %q", def)
	}
	return name, rpn.Value(v), nil
}

// newSession builds the evaluation context described by cfg and o.
func newSession(cfg *Config, o *options, stdout, stderr io.Writer) (*session, error) {
	p := newPrinter(stdout, stderr, cfg.colorEnabled())
	c := rpn.New(cfg.contextOptions()...)
	if cfg.Trace {
		c.SetDebugHook(p.trace)
	}
	cfg.seedVariables(c)

	if cfg.JSONVars.File != "" {
		n, err := loadJSONVariablesFile(c, cfg.JSONVars.File, cfg.JSONVars.Query)
		if err != nil {
			return nil, err
		}
		log.LogVf("loaded %d variables from %s", n, cfg.JSONVars.File)
	}
	for _, def := range o.defines {
		name, v, err := parseDefine(def)
		if err != nil {
			return nil, err
		}
		c.SetVariable(name, v)
	}
	return &session{ctx: c, strict: cfg.Strict, p: p}, nil
}

// run is main without the process exit, so that it can be tested.
func run(args []string, stdin io.Reader, stdinTTY bool, stdout, stderr io.Writer) int {
	o, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "rpn: %v\n%s\n", err, usage)
		return 2
	}
	if o.help {
		fmt.Fprintln(stdout, usage)
		return 0
	}

	path, required := o.configPath, o.configPath != ""
	if !required {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, required)
	if err != nil {
		fmt.Fprintf(stderr, "rpn: %v\n", err)
		return 1
	}
	cfg.apply(o)
	if err := log.SetLogLevelStr(cfg.LogLevel); err != nil {
		fmt.Fprintf(stderr, "rpn: bad log level %q\n", cfg.LogLevel)
		return 2
	}

	s, err := newSession(cfg, o, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "rpn: %v\n", err)
		return 1
	}
	defer s.ctx.Close()

	switch {
	case len(o.exprs) > 0:
		for _, expr := range o.exprs {
			s.eval(expr, false)
		}
	case o.file != "":
		r := stdin
		if o.file != "-" {
			f, err := os.Open(o.file)
			if err != nil {
				fmt.Fprintf(stderr, "rpn: %v\n", err)
				return 1
			}
			defer f.Close()
			r = f
		}
		if err := s.evalLines(r); err != nil {
			fmt.Fprintf(stderr, "rpn: %v\n", err)
			return 1
		}
	case stdinTTY:
		return s.runREPL()
	default:
		if err := s.evalLines(stdin); err != nil {
			fmt.Fprintf(stderr, "rpn: %v\n", err)
			return 1
		}
	}

	if s.failed {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdin, isTerminal(int(os.Stdin.Fd())), os.Stdout, os.Stderr))
}
