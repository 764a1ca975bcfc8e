package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/iconprune/internal/tui"
	"github.com/vvka-141/iconprune/internal/ui"
	"github.com/vvka-141/iconprune/pkg/iconprune"
)

type answerApprover bool

func (a answerApprover) RequestApproval(context.Context, iconprune.DeletionSummary) (bool, error) {
	return bool(a), nil
}

func resetPruneFlags() {
	pruneFlags = pruneFlagValues{}
}

// usePruneHarness answers every prompt with answer and captures command output.
func usePruneHarness(t *testing.T, answer bool) *bytes.Buffer {
	t.Helper()
	resetPruneFlags()
	t.Setenv("ICONPRUNE_MANIFEST", "")
	t.Setenv("ICONPRUNE_ICONS", "")

	original := newApprover
	newApprover = func(bool, tui.Palette) iconprune.Approver { return answerApprover(answer) }

	var out bytes.Buffer
	pruneCmd.SetOut(&out)
	t.Cleanup(func() {
		newApprover = original
		pruneCmd.SetOut(nil)
		resetPruneFlags()
	})
	return &out
}

func writePlugin(t *testing.T, manifest string, icons ...string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(manifest), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "icons"), 0755))
	for _, rel := range icons {
		p := filepath.Join(dir, "icons", filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("<svg/>"), 0644))
	}
	return dir
}

func TestPruneCmd_ArgsValidation_TooMany(t *testing.T) {
	err := pruneCmd.Args(pruneCmd, []string{"a", "b"})
	require.Error(t, err)
	assert.Equal(t, iconprune.ExitUsageError, iconprune.ExitCodeForError(err))
}

func TestPruneCmd_ArgsValidation_Optional(t *testing.T) {
	assert.NoError(t, pruneCmd.Args(pruneCmd, nil))
	assert.NoError(t, pruneCmd.Args(pruneCmd, []string{"."}))
}

func TestPruneCmd_ConfirmDeletes(t *testing.T) {
	out := usePruneHarness(t, true)
	dir := writePlugin(t,
		`{"settings": {}, "a": "FasAddressBook", "b": "SiGithub"}`,
		"font-awesome-solid/AddressBook.svg",
		"simple-icons/Github.svg",
		"simple-icons/Gitlab.svg",
	)

	require.NoError(t, runPrune(pruneCmd, []string{dir}))

	assert.FileExists(t, filepath.Join(dir, "icons", "font-awesome-solid", "AddressBook.svg"))
	assert.FileExists(t, filepath.Join(dir, "icons", "simple-icons", "Github.svg"))
	assert.NoFileExists(t, filepath.Join(dir, "icons", "simple-icons", "Gitlab.svg"))
	assert.Equal(t, "Deleting...\nDeleted 1 icon files.\n", out.String())
}

func TestPruneCmd_DeclineKeepsFiles(t *testing.T) {
	out := usePruneHarness(t, false)
	dir := writePlugin(t, `{"settings": {}}`, "simple-icons/Gitlab.svg")

	require.NoError(t, runPrune(pruneCmd, []string{dir}))

	assert.FileExists(t, filepath.Join(dir, "icons", "simple-icons", "Gitlab.svg"))
	assert.Equal(t, "Nothing was deleted.\n", out.String())
}

func TestPruneCmd_FlagsOverridePluginDir(t *testing.T) {
	usePruneHarness(t, true)
	dir := writePlugin(t, `{"settings": {}, "a": "RiHomeLine"}`, "remix-icons/HomeLine.svg", "remix-icons/Old.svg")
	elsewhere := t.TempDir()

	pruneFlags.manifest = filepath.Join(dir, "data.json")
	pruneFlags.icons = filepath.Join(dir, "icons")

	require.NoError(t, runPrune(pruneCmd, []string{elsewhere}))
	assert.FileExists(t, filepath.Join(dir, "icons", "remix-icons", "HomeLine.svg"))
	assert.NoFileExists(t, filepath.Join(dir, "icons", "remix-icons", "Old.svg"))
}

func TestPruneCmd_EnvironmentSelectsManifest(t *testing.T) {
	usePruneHarness(t, false)
	dir := writePlugin(t, `{"settings": {}}`)
	t.Setenv("ICONPRUNE_MANIFEST", filepath.Join(dir, "data.json"))
	t.Setenv("ICONPRUNE_ICONS", filepath.Join(dir, "icons"))

	assert.NoError(t, runPrune(pruneCmd, nil))
}

func TestPruneCmd_MalformedManifest(t *testing.T) {
	usePruneHarness(t, true)
	dir := writePlugin(t, `{"a": "SiGithub"}`, "simple-icons/Github.svg")

	err := runPrune(pruneCmd, []string{dir})
	require.Error(t, err)
	assert.Equal(t, iconprune.ExitMalformedManifest, iconprune.ExitCodeForError(err))
	assert.FileExists(t, filepath.Join(dir, "icons", "simple-icons", "Github.svg"))
}

func TestPruneCmd_MissingManifest(t *testing.T) {
	usePruneHarness(t, true)

	err := runPrune(pruneCmd, []string{t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, iconprune.ExitMalformedManifest, iconprune.ExitCodeForError(err))
}

func TestPruneCmd_UnknownPrefix(t *testing.T) {
	usePruneHarness(t, true)
	dir := writePlugin(t, `{"settings": {}, "a": "MdiAccount"}`, "simple-icons/Github.svg")

	err := runPrune(pruneCmd, []string{dir})
	require.Error(t, err)
	assert.Equal(t, iconprune.ExitUnknownPrefix, iconprune.ExitCodeForError(err))
	assert.Contains(t, err.Error(), "MdiAccount")
}

func TestNewApprover_SelectsImplementation(t *testing.T) {
	palette := tui.NewPalette(false)
	assert.IsType(t, &ui.ForcedApprover{}, newApprover(true, palette))
	assert.IsType(t, &ui.InteractiveApprover{}, newApprover(false, palette))
}
