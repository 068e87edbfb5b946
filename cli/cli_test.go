package cli

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btree/btree"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newTree(t *testing.T) *btree.Tree[string] {
	t.Helper()
	tr, err := btree.New[string](3)
	require.NoError(t, err)
	return tr
}

func TestVisualize(t *testing.T) {
	tr := newTree(t)
	v := NewVisualizer(tr)
	assert.Equal(t, "the tree is empty", v.Visualize())

	for _, k := range []string{"A", "B", "C", "D", "E", "F"} {
		tr.Insert(k)
	}

	want := strings.Join([]string{
		"layer=0 internal keys=1 [C]",
		"  layer=1 leaf keys=2 [A B]",
		"  layer=1 leaf keys=3 [D E F]",
	}, "\n")
	assert.Equal(t, want, v.Visualize())
	assert.Equal(t, "A B C D E F", v.InOrder())
}

func TestSession(t *testing.T) {
	tr := newTree(t)
	input := strings.Join([]string{
		"insert C A B",
		"get B",
		"get Z",
		"del Z",
		"traverse",
		"check",
		"",
		"frobnicate",
		"del A B C",
		"del A",
		"exit",
		"insert Q",
	}, "\n")

	var out bytes.Buffer
	NewCli(bufio.NewScanner(strings.NewReader(input)), &out, tr).Start()

	got := out.String()
	assert.Contains(t, got, "B-Tree CLI (minimum degree 3)")
	assert.Contains(t, got, "layer=0 leaf keys=3 [A B C]")
	assert.Contains(t, got, "B\n")
	assert.Contains(t, got, "Key not found.")
	assert.Contains(t, got, "Key Z not found.")
	assert.Contains(t, got, "A B C\n")
	assert.Contains(t, got, "OK: 3 keys, height 1")
	assert.Contains(t, got, `Unknown command "frobnicate"`)
	assert.Contains(t, got, "the tree is empty")
	assert.Contains(t, got, "Tree is empty.")

	// Nothing after EXIT runs.
	assert.False(t, tr.Has("Q"))
	assert.True(t, tr.Empty())
}

func TestUsageMessages(t *testing.T) {
	var out bytes.Buffer
	c := NewCli(bufio.NewScanner(strings.NewReader("")), &out, newTree(t))

	assert.True(t, c.processInput("insert"))
	assert.True(t, c.processInput("del"))
	assert.True(t, c.processInput("get a b"))
	assert.False(t, c.processInput("EXIT"))

	assert.Equal(t, "Usage: INSERT <key>...\nUsage: DEL <key>...\nUsage: GET <key>\n", out.String())
}

func TestRunDemo(t *testing.T) {
	tr := newTree(t)
	var out bytes.Buffer

	require.NoError(t, RunDemo(&out, tr))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "A B C "))
	assert.Contains(t, got, "delete Z\n")
	assert.Contains(t, got, "delete A\nthe tree is empty\n")
	assert.Equal(t, 26, strings.Count(got, "-----------------------"))
	assert.True(t, tr.Empty())
	assert.NoError(t, tr.Verify())
}
