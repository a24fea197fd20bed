package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiplog/shiplog/internal/pipeline"
)

const testDescriptor = `{
  "name": "my-app",
  "version": "1.2.3",
  "dependencies": {
    "left-pad": "^1.3.0"
  }
}
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeManifest(t, testDescriptor)

	m, err := Load(filepath.Join(dir, "package.json"))
	require.NoError(t, err)

	assert.Equal(t, "my-app", m.Name())
	assert.Equal(t, "1.2.3", m.Version())
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := writeManifest(t, "{not json")

	_, err := Load(filepath.Join(dir, "package.json"))

	assert.Error(t, err)
}

func TestSetVersionAndSave_PreservesOtherFields(t *testing.T) {
	dir := writeManifest(t, testDescriptor)
	path := filepath.Join(dir, "package.json")

	m, err := Load(path)
	require.NoError(t, err)
	m.SetVersion("2.0.0")
	require.NoError(t, m.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", reloaded.Version())
	assert.Equal(t, "my-app", reloaded.Name())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"left-pad": "^1.3.0"`)
	assert.True(t, len(raw) > 0 && raw[len(raw)-1] == '\n', "descriptor ends with a newline")
}

func TestPluginCheck_PublishesCurrentVersion(t *testing.T) {
	dir := writeManifest(t, testDescriptor)
	ctx := &pipeline.Context{Cwd: dir}
	p := &Plugin{Path: "package.json"}

	require.NoError(t, p.ExecuteStage(ctx, pipeline.StageCheck))

	assert.Equal(t, "1.2.3", ctx.CurrentVersion)
	assert.False(t, ctx.HasErrors())
}

func TestPluginCheck_MissingManifestIsFatal(t *testing.T) {
	ctx := &pipeline.Context{Cwd: t.TempDir()}

	err := (&Plugin{Path: "package.json"}).ExecuteStage(ctx, pipeline.StageCheck)

	assert.Error(t, err)
}

func TestPluginCheck_BadVersionAccumulates(t *testing.T) {
	tests := map[string]string{
		"missing version field": `{"name": "my-app"}`,
		"invalid version":       `{"name": "my-app", "version": "latest"}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := writeManifest(t, content)
			ctx := &pipeline.Context{Cwd: dir}

			require.NoError(t, (&Plugin{Path: "package.json"}).ExecuteStage(ctx, pipeline.StageCheck))

			assert.True(t, ctx.HasErrors())
		})
	}
}

func TestPluginEdit_RewritesVersion(t *testing.T) {
	dir := writeManifest(t, testDescriptor)
	ctx := &pipeline.Context{Cwd: dir, NewVersion: "1.3.0"}
	p := &Plugin{Path: "package.json"}

	require.NoError(t, p.ExecuteStage(ctx, pipeline.StageEdit))

	m, err := Load(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", m.Version())
	assert.Equal(t, []string{"package.json"}, ctx.ChangedFiles)
}

func TestPluginEdit_DryRunWritesNothing(t *testing.T) {
	dir := writeManifest(t, testDescriptor)
	ctx := &pipeline.Context{Cwd: dir, NewVersion: "1.3.0", DryRun: true}

	require.NoError(t, (&Plugin{Path: "package.json"}).ExecuteStage(ctx, pipeline.StageEdit))

	raw, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, testDescriptor, string(raw))
	assert.Empty(t, ctx.ChangedFiles)
}

func TestPluginEdit_RunsLockfileSync(t *testing.T) {
	dir := writeManifest(t, testDescriptor)
	ctx := &pipeline.Context{Cwd: dir, NewVersion: "1.3.0"}
	p := &Plugin{Path: "package.json", SyncCmd: "touch package-lock.json", Lockfile: "package-lock.json"}

	require.NoError(t, p.ExecuteStage(ctx, pipeline.StageEdit))

	assert.FileExists(t, filepath.Join(dir, "package-lock.json"))
	assert.Equal(t, []string{"package.json", "package-lock.json"}, ctx.ChangedFiles,
		"the synced lockfile goes into the release commit")
}

func TestPluginEdit_AbsentLockfileIsNotRecorded(t *testing.T) {
	dir := writeManifest(t, testDescriptor)
	ctx := &pipeline.Context{Cwd: dir, NewVersion: "1.3.0"}
	p := &Plugin{Path: "package.json", SyncCmd: "true", Lockfile: "package-lock.json"}

	require.NoError(t, p.ExecuteStage(ctx, pipeline.StageEdit))

	assert.Equal(t, []string{"package.json"}, ctx.ChangedFiles)
}

func TestPluginEdit_SyncFailureIsFatal(t *testing.T) {
	dir := writeManifest(t, testDescriptor)
	ctx := &pipeline.Context{Cwd: dir, NewVersion: "1.3.0"}
	p := &Plugin{Path: "package.json", SyncCmd: "false"}

	assert.Error(t, p.ExecuteStage(ctx, pipeline.StageEdit))
}
