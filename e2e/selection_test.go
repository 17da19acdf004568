//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeArrowEnterSelects(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartDefault())
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Selected option: none"), "Should start without a selection")

	require.NoError(t, tf.Type("ba"))
	require.True(t, tf.SeePlain("Bamm-Bamm"), "Should list matching suggestions")

	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())
	if !tf.SeePlain("Selected option: Barney") {
		tf.DumpTailOnFail(t, "select-barney", 4096)
		t.Fatal("Should show Barney as the selected option")
	}

	// tab to the Done button and press it
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Enter())

	exited, err := tf.WaitExit(3 * time.Second)
	require.True(t, exited, "Application should exit after Done")
	require.NoError(t, err)
	assert.Equal(t, "Barney\n", tf.Stdout())
}

func TestToggleShowsWholeCatalog(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartDefault())
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Selected option: none"))

	// tab onto the toggle and open the list
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Mr. Slate"), "Toggle should show every candidate")

	// focus is back in the field, so arrows move the highlight
	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Selected option: Fred"), "First candidate should be picked")
}

func TestClearResetsSelection(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartDefault())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Type("wil"))
	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Selected option: Wilma"))

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyCtrlU))
	require.True(t, tf.SeePlain("Selected option: none"), "Ctrl+U should clear the selection")
}

func TestCtrlCPrintsNothing(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartDefault())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.Type("fr"))
	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Selected option: Fred"))

	require.NoError(t, tf.SendCtrlC())
	exited, _ := tf.WaitExit(3 * time.Second)
	require.True(t, exited, "Ctrl+C should exit")
	assert.Empty(t, tf.Stdout())
}
