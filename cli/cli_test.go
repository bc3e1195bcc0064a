package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vchandela/ddia-btree/btree"
)

func runScript(t *testing.T, degree int, script string) (string, *btree.Tree[int]) {
	t.Helper()
	tree, err := btree.New[int](degree)
	require.NoError(t, err)

	var out bytes.Buffer
	c := NewCli(bufio.NewScanner(strings.NewReader(script)), &out, tree, ParseInt)
	c.DisableColor()
	c.Start()
	return out.String(), tree
}

func TestCliInsertAndGet(t *testing.T) {
	out, tree := runScript(t, 2, "SET 10\nset 20\nINSERT 5\nGET 5\nGET 7\n")

	assert.Equal(t, 3, tree.Len())
	assert.Contains(t, out, "[5 10 20]")
	assert.Contains(t, out, "L0: [5 10 20]")
	assert.Contains(t, out, "5\n")
	assert.Contains(t, out, "Key not found.")
}

func TestCliDuplicateAndBadKey(t *testing.T) {
	out, tree := runScript(t, 2, "SET 1\nSET 1\nSET abc\nSET\n")

	assert.Equal(t, 1, tree.Len())
	assert.Contains(t, out, "Key already exists.")
	assert.Contains(t, out, `invalid integer key "abc"`)
	assert.Contains(t, out, "Usage: SET <key>")
}

func TestCliDelete(t *testing.T) {
	out, tree := runScript(t, 2, "SET 1\nSET 2\nSET 3\nSET 4\nDEL 9\nDEL 4\nDEL 2\nSHOW\n")

	assert.Equal(t, 2, tree.Len())
	assert.Contains(t, out, "Key not found.")
	assert.Contains(t, out, "L0: [1 3]")
	assert.Equal(t, 1, tree.Height())
}

func TestCliStatsCheckClear(t *testing.T) {
	out, tree := runScript(t, 3, "SET 4\nSET 8\nSET 2\nSTATS\nCHECK\nCLEAR\nSTATS\n")

	assert.Contains(t, out, "len=3 height=1 degree=3 min=2 max=8\n")
	assert.Contains(t, out, "OK\n")
	assert.Contains(t, out, "len=0 height=1 degree=3\n")
	assert.Equal(t, 0, tree.Len())
}

func TestCliExitStopsProcessing(t *testing.T) {
	out, tree := runScript(t, 2, "SET 1\nEXIT\nSET 2\n")

	assert.Equal(t, 1, tree.Len())
	assert.NotContains(t, out, "[1 2]")
}

func TestCliUnknownCommand(t *testing.T) {
	out, _ := runScript(t, 2, "\nFROB 1\n")
	assert.Contains(t, out, `Unknown command "frob"`)
}

func TestCliStringKeys(t *testing.T) {
	tree, err := btree.New[string](2)
	require.NoError(t, err)

	var out bytes.Buffer
	c := NewCli(bufio.NewScanner(strings.NewReader("SET pear\nSET apple\nGET apple\n")), &out, tree, ParseString)
	c.DisableColor()
	c.Start()

	assert.Contains(t, out.String(), "[apple pear]")
	assert.Contains(t, out.String(), "apple\n")
}
