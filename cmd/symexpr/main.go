package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/symexpr"
	"github.com/zephyrtronium/symexpr/workspace"
)

func main() {
	log.SetFlags(0)
	fd := os.Stdin.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, interactive))
}

// cli is the state of one run of the program.
type cli struct {
	stdout io.Writer
	log    *log.Logger
	color  bool

	cfg  Config
	opts []symexpr.ParseOption
	ws   *workspace.Store

	dump bool
	syms bool
}

// run runs the program and returns its exit status.
func run(args []string, stdout, stderr io.Writer, interactive bool) int {
	var (
		cfgname    string
		depth, lim int
		dump, syms bool
	)
	logger := log.New(stderr, "", 0)
	flags := flag.NewFlagSet("symexpr", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfgname, "config", "", "YAML config file")
	flags.IntVar(&depth, "depth", 0, "maximum parse depth (default from config, else 256)")
	flags.IntVar(&lim, "limit", 0, "maximum printed expression length in bytes; negative for no limit (default from config, else 256)")
	flags.BoolVar(&dump, "dump", false, "dump parse trees")
	flags.BoolVar(&syms, "syms", false, "list the symbols in each expression")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: symexpr [flags] EXPR")
		fmt.Fprintln(stderr, "       symexpr [flags]          (interactive, when stdin is a terminal)")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg := DefaultConfig()
	if cfgname != "" {
		c, err := LoadConfig(cfgname)
		if err != nil {
			logger.Print(err)
			return 2
		}
		cfg = c
	}
	if depth < 0 {
		logger.Printf("depth (%d) must be positive", depth)
		return 2
	}
	if depth > 0 {
		cfg.MaxDepth = depth
	}
	if lim != 0 {
		cfg.MaxOutput = lim
	}

	c := &cli{
		stdout: stdout,
		log:    logger,
		color:  isTerminal(stderr),
		cfg:    cfg,
		opts:   []symexpr.ParseOption{symexpr.MaxDepth(cfg.MaxDepth)},
		ws:     workspace.New(),
		dump:   dump,
		syms:   syms,
	}

	switch flags.NArg() {
	case 0:
		if !interactive {
			flags.Usage()
			return 2
		}
		return c.repl()
	case 1:
		if strings.TrimSpace(flags.Arg(0)) == "" {
			flags.Usage()
			return 2
		}
		return c.eval(flags.Arg(0))
	default:
		flags.Usage()
		return 2
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

// fail reports an error and returns the exit status it implies.
func (c *cli) fail(err error) int {
	msg := err.Error()
	if c.color {
		msg = red(msg)
	}
	c.log.Print(msg)
	return exitCode(err)
}

// exitCode is 2 for program faults, as for usage errors, and 1 otherwise.
func exitCode(err error) int {
	if errors.As(err, new(*symexpr.FaultError)) {
		return 2
	}
	return 1
}

// eval parses, prints, and evaluates one expression.
func (c *cli) eval(src string) int {
	e, err := symexpr.Parse(src, c.opts...)
	if err != nil {
		return c.fail(err)
	}
	return c.show(e)
}

// show prints and evaluates a parsed expression.
func (c *cli) show(e *symexpr.Expr) int {
	if c.dump {
		dumper.Fdump(c.stdout, e)
	}
	s, err := e.Text(c.cfg.MaxOutput)
	if err != nil {
		return c.fail(err)
	}
	if c.syms {
		fmt.Fprintf(c.stdout, "Symbols: %s\n", strings.Join(e.Symbols(), " "))
	}
	v, err := e.Eval()
	if err != nil {
		fmt.Fprintf(c.stdout, "Expression: %s\n", s)
		return c.fail(err)
	}
	fmt.Fprintf(c.stdout, "Expression: %s = %v\n", s, v)
	return 0
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}
