package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	content := "data: in.json\ntemplate: t.docx\noutput: out.docx\nmissingKey: zero\nsanitize: true\nverbose: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docx-render.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Data:       "in.json",
		Template:   "t.docx",
		Output:     "out.docx",
		MissingKey: "zero",
		Sanitize:   true,
		Verbose:    true,
	}, cfg)
}

func TestLoad_PrefersYml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docx-render.yml"), []byte("data: a.json\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docx-render.yaml"), []byte("data: b.json\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "a.json", cfg.Data)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docx-render.yml"), []byte("data: [unclosed\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
