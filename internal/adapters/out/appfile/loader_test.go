package appfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devharbor/netward/internal/domain"
)

func TestParse(t *testing.T) {
	app, err := Parse([]byte(`
name: blog
services:
  web:
    proxy:
      - blog.test
      - www.blog.test
  db: {}
`))

	require.NoError(t, err)
	assert.Equal(t, "blog", app.Name)
	require.Len(t, app.Services, 2)
	assert.Equal(t, "db", app.Services[0].Name)
	assert.Equal(t, "web", app.Services[1].Name)
	assert.Equal(t, []string{"blog.test", "www.blog.test"}, app.Services[1].ProxyHostnames)
}

func TestParse_MissingName(t *testing.T) {
	_, err := Parse([]byte(`services: {web: {}}`))

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte(`name: [`))

	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultName)
	require.NoError(t, os.WriteFile(path, []byte("name: shop\nservices:\n  web: {}\n"), 0o600))

	app, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "shop", app.Name)
	assert.Equal(t, "shop_default", app.DefaultNetworkName())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

	assert.Error(t, err)
}
