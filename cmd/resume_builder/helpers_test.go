package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/filestore"
	"github.com/jonathan/resume-builder/internal/reorder"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the resume_builder binary for testing
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "resume_builder")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_builder ./cmd/resume_builder'", binaryPath)
	}
	return binaryPath
}

// writeStarter writes the default snapshot into a temp dir
func writeStarter(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, filestore.WriteSnapshotFile(path, store.New(store.WithLogger(logger())).Snapshot()))
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSnapshot(t *testing.T) {
	snap, err := loadSnapshot(writeStarter(t))

	require.NoError(t, err)
	assert.Equal(t, []string{"personalInfo", "skills", "experience", "education", "customSection-1"},
		snap.SectionOrder.IDs())
}

func TestLoadSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{"document":`},
		{"wrong type", `{"document": {"skills": "go"}}`},
		{"missing document", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadSnapshot(writeFile(t, "snap.json", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := loadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestOpenStore_ClampsOrder(t *testing.T) {
	path := writeFile(t, "snap.json", `{
		"document": {"customSections": [{"id": "a", "title": "Talks", "items": []}]},
		"sectionOrder": [{"id": "customSection-a"}, {"id": "customSection-a"}, {"id": "customSection-gone"}]
	}`)

	s, err := openStore(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"personalInfo", "skills", "experience", "education", "customSection-a"},
		s.Order().IDs()[:5])
}

func TestLoadTheme(t *testing.T) {
	base := types.DefaultTheme()

	theme, err := loadTheme("", base)
	require.NoError(t, err)
	assert.Equal(t, base, theme)

	theme, err = loadTheme(writeFile(t, "theme.json", `{"fontFamily": "serif", "primaryColor": "#112233"}`), base)
	require.NoError(t, err)
	assert.Equal(t, "serif", theme.FontFamily)
	assert.Equal(t, "#112233", theme.PrimaryColor)
	assert.Equal(t, base.TextColor, theme.TextColor)

	_, err = loadTheme(writeFile(t, "bad.json", `{"fontFamily": "comic"}`), base)
	assert.Error(t, err)
}

func TestDragReorder(t *testing.T) {
	s := store.New(store.WithLogger(logger()))
	c := reorder.NewController(s, logger())

	committed, err := dragReorder(c, s.Order(), "education", "skills", false)

	require.NoError(t, err)
	assert.True(t, committed)
	assert.Equal(t, []string{"personalInfo", "education", "skills", "experience", "customSection-1"}, s.Order().IDs())
}

func TestDragReorder_DryRunAndUnknown(t *testing.T) {
	s := store.New(store.WithLogger(logger()))
	c := reorder.NewController(s, logger())

	committed, err := dragReorder(c, s.Order(), "education", "skills", true)
	require.NoError(t, err)
	assert.False(t, committed)
	assert.Equal(t, reorder.Idle, c.State())
	assert.Equal(t, "education", s.Order()[3].ID)

	_, err = dragReorder(c, s.Order(), "customSection-nope", "skills", false)
	assert.Error(t, err)

	_, err = dragReorder(c, s.Order(), "skills", "customSection-nope", false)
	assert.Error(t, err)
}

func TestKeyboardReorder(t *testing.T) {
	tests := []struct {
		name  string
		steps int
		want  []string
	}{
		{"down one", 1, []string{"personalInfo", "experience", "skills", "education", "customSection-1"}},
		{"up clamps at top", -5, []string{"skills", "personalInfo", "experience", "education", "customSection-1"}},
		{"down clamps at bottom", 10, []string{"personalInfo", "experience", "education", "customSection-1", "skills"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.New(store.WithLogger(logger()))
			c := reorder.NewController(s, logger())

			committed, err := keyboardReorder(c, "skills", tt.steps, false)

			require.NoError(t, err)
			assert.True(t, committed)
			assert.Equal(t, tt.want, s.Order().IDs())
		})
	}
}

func TestCustomID(t *testing.T) {
	assert.Equal(t, "abc", customID("abc"))
	assert.Equal(t, "abc", customID("customSection-abc"))
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, writeOutput(path, []byte("hello")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}
