package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/maeumgido/internal/domain"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load(context.Background(), NewSource(""))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, c.Len(), 3)

	p, err := c.Get("morning-peace")
	require.NoError(t, err)
	assert.Equal(t, "평안의 기도", p.Title)
	assert.Contains(t, p.Situations, "아침")
	assert.False(t, strings.HasSuffix(p.Body, "\n"), "trailing newline from the YAML block is trimmed")

	facets := c.Facets()
	assert.Contains(t, facets.Emotions, "불안")
	assert.Contains(t, facets.Situations, "밤")
}

func TestSource_Origin(t *testing.T) {
	assert.Equal(t, "embedded", NewSource("").Origin())
	assert.Equal(t, "memory", NewSourceFromBytes([]byte("prayers: []")).Origin())
	assert.Equal(t, "/etc/prayers.yaml", NewSource("/etc/prayers.yaml").Origin())
}

func TestSource_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prayers.yaml")
	data := []byte(`prayers:
  - id: one
    title: 하나
    body: 첫 번째 기도
    emotions: [기쁨]
    situations: [아침]
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	prayers, err := NewSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, prayers, 1)
	assert.Equal(t, domain.Prayer{
		ID:         "one",
		Title:      "하나",
		Body:       "첫 번째 기도",
		Emotions:   []string{"기쁨"},
		Situations: []string{"아침"},
	}, prayers[0])
}

func TestSource_LoadErrors(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantCatalog bool
		contains    string
	}{
		{
			name:        "malformed yaml",
			yaml:        "prayers: [",
			wantCatalog: true,
			contains:    "parsing catalog",
		},
		{
			name: "missing title",
			yaml: `prayers:
  - id: x
    body: b
    emotions: [a]
    situations: [b]
`,
			wantCatalog: true,
			contains:    "title required",
		},
		{
			name: "empty emotions",
			yaml: `prayers:
  - id: x
    title: t
    body: b
    emotions: []
    situations: [b]
`,
			wantCatalog: true,
			contains:    "emotions",
		},
		{
			name: "blank situation label",
			yaml: `prayers:
  - id: x
    title: t
    body: b
    emotions: [a]
    situations: [""]
`,
			wantCatalog: true,
			contains:    "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSourceFromBytes([]byte(tt.yaml)).Load(context.Background())

			require.Error(t, err)
			assert.Equal(t, tt.wantCatalog, domain.IsInvalidCatalog(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad_DuplicateIDsRejected(t *testing.T) {
	src := NewSourceFromBytes([]byte(`prayers:
  - {id: a, title: A, body: b, emotions: [x], situations: [y]}
  - {id: a, title: B, body: b, emotions: [x], situations: [y]}
`))

	_, err := Load(context.Background(), src)

	require.Error(t, err)
	assert.True(t, domain.IsInvalidCatalog(err))
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestSource_MissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource("").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
