package cli

import (
	"fmt"
	"io"

	"btree/btree"
)

const demoKeys = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

/*
RunDemo inserts the alphabet in order, prints the tree, then deletes the letters
from Z back to A and prints the tree after every delete. It stops at the first
delete that fails.
*/
func RunDemo(out io.Writer, t *btree.Tree[string]) error {
	v := NewVisualizer(t)

	for _, r := range demoKeys {
		key := string(r)
		fmt.Fprintf(out, "%s ", key)
		t.Insert(key)
	}
	fmt.Fprintf(out, "\n%s\n", v.Visualize())

	for i := len(demoKeys) - 1; i >= 0; i-- {
		key := demoKeys[i : i+1]
		fmt.Fprintln(out, "-----------------------")
		if err := t.Delete(key); err != nil {
			return fmt.Errorf("demo: delete %s: %w", key, err)
		}
		fmt.Fprintf(out, "delete %s\n%s\n", key, v.Visualize())
	}
	return nil
}
