package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSimulate_DefaultStock(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runSimulate(context.Background(), &out, simulateOptions{Days: 1}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "OMGHAI!", lines[0])
	assert.Equal(t, "Item { Name = +5 Dexterity Vest, Quality = 19, SellIn = 9 }", lines[1])
	assert.Equal(t, "Item { Name = Conjured Mana Cake, Quality = 4, SellIn = 2 }", lines[6])
}

func TestRunSimulate_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[
		{"name":"Aged Brie","category":"appreciating","quality":0,"sell_in":1}
	]}`), 0o600))

	var out bytes.Buffer
	require.NoError(t, runSimulate(context.Background(), &out, simulateOptions{Days: 2, File: path, Headers: true}))

	assert.Equal(t, `OMGHAI!
-------- day 1 --------
Item { Name = Aged Brie, Quality = 1, SellIn = 0 }
-------- day 2 --------
Item { Name = Aged Brie, Quality = 3, SellIn = -1 }
`, out.String())
}

func TestRunSimulate_MissingFile(t *testing.T) {
	err := runSimulate(context.Background(), &bytes.Buffer{}, simulateOptions{Days: 1, File: "/nonexistent/inventory.json"})
	assert.ErrorContains(t, err, "failed to load inventory")
}

func TestSimulateCmd_Flags(t *testing.T) {
	t.Setenv("SIM_DAYS", "")
	t.Setenv("INVENTORY_FILE", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"simulate", "--days", "3", "--headers", "--no-color"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "-------- day 3 --------")
	assert.NotContains(t, out.String(), "\x1b[")
}
