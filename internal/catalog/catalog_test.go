package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/nexus-prive/internal/catalog"
	"github.com/xavierca1/nexus-prive/internal/entity"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	props, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, props, 6)

	assert.Equal(t, "The Skyline Penthouse", props[0].Title)
	assert.Equal(t, entity.Penthouse, props[0].Type)
	assert.Equal(t, 6500, props[0].SqFt)
	assert.Equal(t, "£14.2M", props[2].Price)
	assert.Equal(t, "CHF 18.0M", props[4].Price)
	assert.Equal(t, "18% Est.", props[5].ROI)
}

func TestFindByID(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	p, err := c.FindByID(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "The Gilded Loft", p.Title)
	assert.Equal(t, entity.Mansion, p.Type)

	_, err = c.FindByID(context.Background(), "99")
	assert.ErrorIs(t, err, entity.ErrPropertyNotFound)
}

func TestListReturnsCopy(t *testing.T) {
	c, _ := catalog.Default()
	props, _ := c.List(context.Background())
	props[0].Title = "changed"

	again, _ := c.List(context.Background())
	assert.Equal(t, "The Skyline Penthouse", again[0].Title)
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "properties:\n  - id: x1\n    title: Marina Loft\n    type: Penthouse\n    price: $3.1M\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	props, _ := c.List(context.Background())
	require.Len(t, props, 1)
	assert.Equal(t, "Marina Loft", props[0].Title)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	_, err := catalog.Parse([]byte("properties:\n  - title: no id\n"))
	assert.ErrorContains(t, err, "no id")

	_, err = catalog.Parse([]byte("properties:\n  - id: a\n  - id: a\n"))
	assert.ErrorContains(t, err, "twice")

	_, err = catalog.Parse([]byte("properties:\n  - id: a\n    floors: 3\n"))
	assert.Error(t, err)
}
