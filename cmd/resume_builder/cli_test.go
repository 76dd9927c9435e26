package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand_Text(t *testing.T) {
	binaryPath := getBinaryPath(t)
	snapshot := writeStarter(t)

	cmd := exec.Command(binaryPath, "render", "--snapshot", snapshot, "--format", "text", "--variant", "classic")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "WORK EXPERIENCE")
}

func TestRenderCommand_MissingSnapshotFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "render")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), `required flag(s) "snapshot" not set`)
}

func TestReorderCommand_RewritesSnapshot(t *testing.T) {
	binaryPath := getBinaryPath(t)
	snapshot := writeStarter(t)

	cmd := exec.Command(binaryPath, "reorder", "--snapshot", snapshot, "--section", "education", "--over", "personalInfo")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	_, snap, err := filestore.ReadSnapshotFile(snapshot)
	require.NoError(t, err)
	assert.Equal(t, "education", snap.SectionOrder[0].ID)
}

func TestSectionCommands(t *testing.T) {
	binaryPath := getBinaryPath(t)
	snapshot := writeStarter(t)

	output, err := exec.Command(binaryPath, "section", "add", "--snapshot", snapshot, "--title", "Awards").CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), `Added custom section "Awards"`)

	output, err = exec.Command(binaryPath, "section", "remove", "--snapshot", snapshot, "--id", "customSection-1").CombinedOutput()
	require.NoError(t, err, string(output))

	_, snap, err := filestore.ReadSnapshotFile(snapshot)
	require.NoError(t, err)
	assert.False(t, snap.SectionOrder.Contains("customSection-1"))
	assert.Len(t, snap.Document.CustomSections, 1)
	assert.Equal(t, "Awards", snap.Document.CustomSections[0].Title)
}

func TestValidateCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "validate", "--snapshot", writeStarter(t)).CombinedOutput()
	assert.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Validation passed")

	bad := writeFile(t, "bad.json", `{"document": 5}`)
	cmd := exec.Command(binaryPath, "validate", "--snapshot", bad)
	output, err = cmd.CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, string(output), "Validation failed")
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode())
	}
}

func TestExportCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)
	outDir := filepath.Join(t.TempDir(), "out")

	cmd := exec.Command(binaryPath, "export", "--snapshot", writeStarter(t),
		"--variants", "modern,classic", "--formats", "html,latex", "--out-dir", outDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	for _, name := range []string{"resume-modern.html", "resume-modern.tex", "resume-classic.html", "resume-classic.tex"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestMigrateCommand_RequiresDatabase(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "migrate")
	cmd.Env = append(os.Environ(), "DATABASE_URL=")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no database configured")
}
