package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/tripdesk/internal/assets"
	"github.com/dmitrijs2005/tripdesk/internal/fixtures"
	"github.com/dmitrijs2005/tripdesk/internal/masters"
	"github.com/dmitrijs2005/tripdesk/internal/models"
	"github.com/dmitrijs2005/tripdesk/internal/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *masters.Registry {
	t.Helper()
	seed, err := fixtures.Load()
	require.NoError(t, err)
	refs, err := refdata.New(seed.Reference)
	require.NoError(t, err)
	return masters.NewRegistry(seed, masters.Env{Refs: refs, Picker: assets.NoopPicker{}})
}

// run feeds the script to a console over reg and returns what it printed.
func run(t *testing.T, reg *masters.Registry, script ...string) string {
	t.Helper()
	orig := getTermSize
	getTermSize = func(int) (int, int, error) { return 0, 0, errors.New("not a terminal") }
	t.Cleanup(func() { getTermSize = orig })

	var out bytes.Buffer
	app := NewApp(reg, strings.NewReader(strings.Join(script, "\n")+"\n"), &out, nil)
	app.Run(context.Background())
	return out.String()
}

func TestRun_RootCommands(t *testing.T) {
	out := run(t, newRegistry(t), "help", "screens", "open hotels", "open", "dance", "exit")

	assert.Contains(t, out, rootHelp)
	assert.Contains(t, out, "proposal-templates")
	assert.Contains(t, out, "Unknown screen: hotels")
	assert.Contains(t, out, "Usage: open <screen>")
	assert.Contains(t, out, "Unknown command: dance")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRun_EndOfInputExits(t *testing.T) {
	out := run(t, newRegistry(t), "open payments")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRun_AddPaymentType(t *testing.T) {
	reg := newRegistry(t)
	out := run(t, reg,
		"open payments",
		"add",
		"save",
		"set name Credit  Card",
		"set status",
		"Inactive",
		"save",
		"back",
		"exit",
	)

	assert.Contains(t, out, "cannot save, required fields missing: name")
	assert.Contains(t, out, "name = Credit  Card")
	assert.Contains(t, out, "Saved PT-")
	assert.Contains(t, out, "payments (editing)> ")

	s, _ := reg.Get("payments")
	rows := s.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "Credit  Card", rows[3][1])
	assert.Equal(t, string(models.StatusInactive), rows[3][3])
}

func TestRun_SearchFilterAndDelete(t *testing.T) {
	reg := newRegistry(t)
	out := run(t, reg,
		"open payments",
		"search cash",
		"search",
		"filter",
		"filter Inactive",
		"filter All",
		"delete PT-2",
		"n",
		"delete PT-2",
		"y",
		"delete PT-404",
		"export",
		"logs",
		"back",
		"exit",
	)

	assert.Contains(t, out, `search: "cash"  filter: All`)
	assert.Contains(t, out, "Usage: filter <value|All>")
	assert.Contains(t, out, "Delete payment type PT-2? [y/N] ")
	assert.Contains(t, out, "Deleted PT-2")
	assert.Equal(t, 2, strings.Count(out, "Nothing deleted"))
	assert.Contains(t, out, "export: not available")
	assert.Contains(t, out, "logs: not available")

	s, _ := reg.Get("payments")
	assert.Len(t, s.Rows(), 2)
}

func TestRun_RateSheet(t *testing.T) {
	reg := newRegistry(t)
	out := run(t, reg,
		"open trains",
		"rates",
		"rates TR-404",
		"rates TR-2",
		"add",
		"options class",
		"set class 2A",
		"set price 1999",
		"save",
		"back",
		"back",
		"open payments",
		"rates PT-1",
		"exit",
	)

	assert.Contains(t, out, "Usage: rates <id>")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "== Tariffs: Shatabdi Express ==")
	assert.Contains(t, out, "trains/tariffs> ")
	assert.Contains(t, out, "trains/tariffs (editing)> ")
	assert.Contains(t, out, "SL")
	assert.Contains(t, out, "This screen has no rate sheet")

	s, _ := reg.Get("trains")
	trains := s.(*masters.Trains)
	assert.Equal(t, 4, trains.Tariffs.Len())
}

func TestRun_RoleTree(t *testing.T) {
	reg := newRegistry(t)
	out := run(t, reg,
		"open roles",
		"expand ROLE-1",
		"collapse ROLE-1",
		"expand ROLE-404",
		"edit ROLE-4",
		"back",
		"write description",
		"Handles walk-in and",
		"phone enquiries",
		"",
		"save",
		"open payments",
		"exit",
	)

	assert.Contains(t, out, "- Managing Director")
	assert.Contains(t, out, "+ Managing Director")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "Save or cancel the open record first")
	assert.Contains(t, out, "Saved ROLE-4")
	assert.Contains(t, out, "Unknown command: open")

	s, _ := reg.Get("roles")
	n, ok := s.(*masters.RoleScreen).Tree().Find("ROLE-4")
	require.True(t, ok)
	assert.Equal(t, "Handles walk-in and\nphone enquiries", n.Description)
}

func TestRun_TreeCommandsOnFlatScreen(t *testing.T) {
	out := run(t, newRegistry(t), "open states", "expand ST-1", "edit ST-1", "set country Atlantis", "options country", "cancel", "exit")

	assert.Contains(t, out, "This screen is not a tree")
	assert.Contains(t, out, "invalid value")
	assert.Contains(t, out, "CTY-NP")
}
