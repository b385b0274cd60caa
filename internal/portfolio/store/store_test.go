package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudirimachado/portfolio-backend/internal/portfolio/domain"
)

func tempStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio_data.json")
	return NewFileStore(path), path
}

func TestLoad_MissingFile(t *testing.T) {
	st, _ := tempStore(t)

	doc := st.Load()
	require.NotNil(t, doc)
	assert.Empty(t, doc.CustomProjects)
	assert.Empty(t, doc.Overrides)
	assert.Empty(t, doc.Galleries)
}

func TestLoad_CorruptFile(t *testing.T) {
	st, path := tempStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	doc := st.Load()
	require.NotNil(t, doc)
	assert.Empty(t, doc.CustomProjects)
}

func TestLoad_PartialDocument(t *testing.T) {
	st, path := tempStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"custom_projects": []}`), 0o644))

	doc := st.Load()
	require.NotNil(t, doc.Overrides)
	require.NotNil(t, doc.Galleries)
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	st, _ := tempStore(t)

	doc := domain.NewDocument()
	doc.CustomProjects = append(doc.CustomProjects, domain.CustomProject{ID: "custom_abc123", Title: "My App"})
	doc.Overrides["42"] = domain.Override{Title: "Renamed", Featured: true}
	doc.Galleries["custom_abc123"] = domain.Gallery{
		MainImage: "data:image/png;base64,xyz",
		Images:    []domain.Image{{ID: "img1", Data: "data:image/png;base64,xyz"}},
		Modules:   map[string][]domain.Image{"general": {{ID: "img1", Data: "data:image/png;base64,xyz"}}},
	}
	require.NoError(t, st.Save(doc))

	loaded := st.Load()
	assert.Equal(t, doc.CustomProjects, loaded.CustomProjects)
	assert.Equal(t, doc.Overrides, loaded.Overrides)
	assert.Equal(t, doc.Galleries, loaded.Galleries)
}

func TestSave_TopLevelKeys(t *testing.T) {
	st, path := tempStore(t)
	require.NoError(t, st.Save(domain.NewDocument()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &top))
	assert.Len(t, top, 3)
	assert.Contains(t, top, "custom_projects")
	assert.Contains(t, top, "github_metadata")
	assert.Contains(t, top, "project_galleries")
}

func TestUpdate_ErrorLeavesFileUntouched(t *testing.T) {
	st, path := tempStore(t)

	doc := domain.NewDocument()
	doc.Overrides["1"] = domain.Override{Title: "Original"}
	require.NoError(t, st.Save(doc))

	boom := errors.New("boom")
	err := st.Update(func(d *domain.Document) error {
		d.Overrides["1"] = domain.Override{Title: "Changed"}
		return boom
	})
	require.ErrorIs(t, err, boom)

	raw, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(raw), "Original")
	assert.NotContains(t, string(raw), "Changed")
}

func TestSave_WriteFailure(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "missing-dir", "data.json"))
	assert.Error(t, st.Save(domain.NewDocument()))
}
