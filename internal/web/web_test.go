package web

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	require.NotNil(t, tmpl.Lookup("index.html.tmpl"))

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "index.html.tmpl", map[string]any{
		"View":           map[string]any{"Postcode": `"><script>`},
		"PostcodeLength": 6,
	})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), `"><script>`, "input value must be escaped")
}

func TestStatic(t *testing.T) {
	css, err := fs.ReadFile(Static(), "style.css")
	require.NoError(t, err)
	assert.Contains(t, string(css), ".error")
}
