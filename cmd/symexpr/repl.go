package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/symexpr"
	"github.com/zephyrtronium/symexpr/workspace"
)

const replHelp = `Enter an expression to print and evaluate it, or a command:
  :let NAME = EXPR   bind NAME to EXPR
  :show NAME         print and evaluate the expression bound to NAME
  :unset NAME        remove the binding for NAME
  :list              list bindings
  :help              show this message
  :quit              exit`

func (c *cli) repl() int {
	c.preload()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if hist := c.cfg.historyPath(); hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			f, err := os.Create(hist)
			if err != nil {
				c.log.Printf("couldn't save history: %v", err)
				return
			}
			ln.WriteHistory(f)
			f.Close()
		}()
	}

	for {
		line, err := ln.Prompt(c.cfg.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(c.stdout)
				return 0
			}
			return c.fail(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if c.command(line) {
			return 0
		}
	}
}

// preload binds the workspace entries from the config, in name order.
func (c *cli) preload() {
	names := make([]string, 0, len(c.cfg.Workspace))
	for name := range c.cfg.Workspace {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := c.let(name, c.cfg.Workspace[name]); err != nil {
			c.fail(fmt.Errorf("config workspace %s: %w", name, err))
		}
	}
}

// command runs one line of REPL input. It returns true if the REPL should
// exit.
func (c *cli) command(line string) bool {
	if !strings.HasPrefix(line, ":") {
		c.eval(line)
		return false
	}
	cmd, arg := line, ""
	if k := strings.IndexAny(line, " \t"); k >= 0 {
		cmd, arg = line[:k], strings.TrimSpace(line[k+1:])
	}
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(c.stdout, replHelp)
	case ":let":
		name, src, ok := strings.Cut(arg, "=")
		if !ok {
			c.fail(errors.New(`usage: :let NAME = EXPR`))
			return false
		}
		if err := c.let(strings.TrimSpace(name), src); err != nil {
			c.fail(err)
		}
	case ":show":
		v, ok := c.ws.Get(arg)
		if !ok {
			c.fail(fmt.Errorf("%q is not bound", arg))
			return false
		}
		c.show(v.(*symexpr.Expr))
	case ":unset":
		c.ws.Unset(arg)
	case ":list":
		for _, name := range c.ws.Names() {
			v, _ := c.ws.Get(name)
			s, err := v.(*symexpr.Expr).Text(c.cfg.MaxOutput)
			if err != nil {
				c.fail(err)
				continue
			}
			fmt.Fprintf(c.stdout, "%s = %s\n", name, s)
		}
	default:
		c.fail(fmt.Errorf("unknown command %s; try :help", cmd))
	}
	return false
}

// let parses src and binds it to name in the workspace.
func (c *cli) let(name, src string) error {
	e, err := symexpr.Parse(src, c.opts...)
	if err != nil {
		return err
	}
	switch st := c.ws.Set(name, e); st {
	case workspace.OK:
		return nil
	case workspace.Full:
		return fmt.Errorf("can't bind %q: workspace is full (%d names); :unset one first", name, workspace.Size)
	case workspace.BadName:
		return fmt.Errorf("can't bind %q: names must have 1 to %d bytes", name, workspace.NameSize-1)
	default:
		return fmt.Errorf("can't bind %q: %v", name, st)
	}
}
