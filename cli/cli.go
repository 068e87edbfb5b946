package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"btree/btree"
)

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *btree.Tree[string]
	visualizer *Visualizer
}

func NewCli(s *bufio.Scanner, out io.Writer, t *btree.Tree[string]) *Cli {
	return &Cli{scanner: s, out: out, tree: t, visualizer: NewVisualizer(t)}
}

// Start reads commands until EXIT or end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintf(c.out, `
B-Tree CLI (minimum degree %d)

Available Commands:
  INSERT <key>... Insert keys into the B-Tree
  DEL <key>...    Remove keys from the B-Tree
  GET <key>       Report whether key is stored
  PRINT           Show the B-Tree node by node
  TRAVERSE        List all keys in order
  CHECK           Verify the B-Tree invariants
  HELP            Show this message
  EXIT            Terminate this session
`, c.tree.Degree())
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, color.HiBlackString("> "))
}

// processInput runs one command line and reports whether the session continues.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "insert", "set":
		c.processInsertCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "print":
		fmt.Fprintln(c.out, c.visualizer.Visualize())
	case "traverse":
		fmt.Fprintln(c.out, c.visualizer.InOrder())
	case "check":
		c.processCheckCommand()
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

func (c *Cli) processInsertCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: INSERT <key>...")
		return
	}
	for _, key := range args {
		c.tree.Insert(key)
	}
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: DEL <key>...")
		return
	}
	for _, key := range args {
		err := c.tree.Delete(key)
		switch {
		case errors.Is(err, btree.ErrEmptyTree):
			fmt.Fprintln(c.out, "Tree is empty.")
			return
		case errors.Is(err, btree.ErrKeyNotFound):
			fmt.Fprintf(c.out, "Key %s not found.\n", key)
		}
	}
	fmt.Fprintln(c.out, c.visualizer.Visualize())
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	if !c.tree.Has(args[0]) {
		fmt.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintln(c.out, args[0])
}

func (c *Cli) processCheckCommand() {
	if err := c.tree.Verify(); err != nil {
		fmt.Fprintln(c.out, color.RedString(err.Error()))
		return
	}
	fmt.Fprintf(c.out, "OK: %d keys, height %d\n", c.tree.Len(), c.tree.Height())
}
