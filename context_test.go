package docxrender

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadContext(t *testing.T) {
	path := writeFile(t, "datos.json", "\xef\xbb\xbf"+`{
		"datos": {"grado": "4to", "capacidades": ["a", "b"]},
		"numeroSesion": 3,
		"activo": true
	}`)

	ctx, err := LoadContext(path)
	require.NoError(t, err)

	want := Context{
		"datos": map[string]interface{}{
			"grado":       "4to",
			"capacidades": []interface{}{"a", "b"},
		},
		"numeroSesion": json.Number("3"),
		"activo":       true,
	}
	if diff := cmp.Diff(want, ctx); diff != "" {
		t.Fatalf("context mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadContext_NotFound(t *testing.T) {
	_, err := LoadContext(filepath.Join(t.TempDir(), "datos.json"))
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadContext_ParseErrors(t *testing.T) {
	tests := map[string]string{
		"malformed":  `{"name": "Ana",}`,
		"empty":      ``,
		"array":      `[{"name": "Ana"}]`,
		"string":     `"Ana"`,
		"null":       `null`,
		"trailing":   `{"name": "Ana"} {"x": 1}`,
		"truncated":  `{"name": "A`,
		"not json":   `name: Ana`,
		"number top": `42`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "datos.json", content)
			_, err := LoadContext(path)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, path, pe.Path)
		})
	}
}

func TestDecodeContext_KindInMessage(t *testing.T) {
	_, err := DecodeContext(strings.NewReader(`[1, 2]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "array")
}
