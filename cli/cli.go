package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/vchandela/ddia-btree/btree"
)

// ParseFunc turns a command argument into a key.
type ParseFunc[K any] func(string) (K, error)

func ParseString(s string) (string, error) {
	return s, nil
}

func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer key %q", s)
	}
	return n, nil
}

type Cli[K any] struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *btree.Tree[K]
	parse      ParseFunc[K]
	visualizer *btree.Visualizer[K]
	prompt     *color.Color
	failure    *color.Color
}

func NewCli[K any](s *bufio.Scanner, out io.Writer, t *btree.Tree[K], parse ParseFunc[K]) *Cli[K] {
	v := &btree.Visualizer[K]{
		Tree: t,
	}
	return &Cli[K]{
		scanner:    s,
		out:        out,
		tree:       t,
		parse:      parse,
		visualizer: v,
		prompt:     color.New(color.FgYellow),
		failure:    color.New(color.FgRed),
	}
}

// DisableColor turns off colored output for the prompt, errors and the visualizer.
func (c *Cli[K]) DisableColor() {
	c.prompt.DisableColor()
	c.failure.DisableColor()
	c.visualizer.NoColor = true
}

// Start reads commands until EXIT or end of input.
func (c *Cli[K]) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli[K]) printHelp() {
	fmt.Fprint(c.out, `
B-Tree CLI

Available Commands:
  SET <key>   Insert a key into the B-Tree (alias: INSERT)
  DEL <key>   Remove a key from the B-Tree
  GET <key>   Look up a key in the B-Tree
  SHOW        Print the B-Tree level by level
  CHECK       Verify the B-Tree invariants
  STATS       Print size, height, degree, min and max
  CLEAR       Remove every key
  HELP        Print this message
  EXIT        Terminate this session
`+"\n")
}

func (c *Cli[K]) printPrompt() {
	c.prompt.Fprint(c.out, "> ")
}

func (c *Cli[K]) printError(format string, args ...any) {
	c.failure.Fprintf(c.out, format+"\n", args...)
}

// processInput runs one command line and reports whether the session continues.
func (c *Cli[K]) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		c.printError("Unknown command \"%s\"", command)
	case "set", "insert":
		c.processSetCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "show":
		fmt.Fprintln(c.out, c.visualizer.Visualize())
	case "check":
		c.processCheckCommand()
	case "stats":
		c.processStatsCommand()
	case "clear":
		c.tree.Clear()
		fmt.Fprintln(c.out, "OK")
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

func (c *Cli[K]) parseKey(args []string, usage string) (K, bool) {
	var zero K
	if len(args) != 1 {
		fmt.Fprintln(c.out, usage)
		return zero, false
	}
	key, err := c.parse(args[0])
	if err != nil {
		c.printError("Error: %v", err)
		return zero, false
	}
	return key, true
}

func (c *Cli[K]) processSetCommand(args []string) {
	key, ok := c.parseKey(args, "Usage: SET <key>")
	if !ok {
		return
	}
	if err := c.tree.Insert(key); err != nil {
		if errors.Is(err, btree.ErrDuplicateKey) {
			c.printError("Key already exists.")
			return
		}
		c.printError("Error: %v", err)
		return
	}
	fmt.Fprintln(c.out, c.tree)
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli[K]) processDeleteCommand(args []string) {
	key, ok := c.parseKey(args, "Usage: DEL <key>")
	if !ok {
		return
	}
	if !c.tree.Delete(key) {
		fmt.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintln(c.out, c.tree)
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli[K]) processGetCommand(args []string) {
	key, ok := c.parseKey(args, "Usage: GET <key>")
	if !ok {
		return
	}
	found, ok := c.tree.Search(key)
	if !ok {
		fmt.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintln(c.out, found)
}

func (c *Cli[K]) processCheckCommand() {
	if err := c.tree.Check(); err != nil {
		c.printError("%v", err)
		return
	}
	fmt.Fprintln(c.out, "OK")
}

func (c *Cli[K]) processStatsCommand() {
	fmt.Fprintf(c.out, "len=%d height=%d degree=%d", c.tree.Len(), c.tree.Height(), c.tree.Degree())
	if lo, ok := c.tree.Min(); ok {
		hi, _ := c.tree.Max()
		fmt.Fprintf(c.out, " min=%v max=%v", lo, hi)
	}
	fmt.Fprintln(c.out)
}
