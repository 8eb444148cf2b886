//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/maeumgido/internal/domain"
	"github.com/jsamuelsen/maeumgido/internal/platform/bootstrap"
)

const customCatalog = `prayers:
  - id: harvest
    title: 추수의 기도
    body: 거둔 것을 감사합니다.
    emotions: [감사]
    situations: [가을]
  - id: rain
    title: 비 오는 날의 기도
    body: 젖은 마음을 말려 주소서.
    emotions: [슬픔]
    situations: [가을]
`

// writeConfigs lays out configs/ in a fresh working directory.
func writeConfigs(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	t.Chdir(dir)

	return dir
}

// TestConfig_ProfileOverridesBase verifies layering of base, profile and env.
func TestConfig_ProfileOverridesBase(t *testing.T) {
	writeConfigs(t, map[string]string{
		"configs/base.yaml": "server:\n  port: 9000\nshare:\n  timeout: 10s\n",
		"configs/qa.yaml":   "server:\n  port: 9100\nlog:\n  level: debug\n",
	})

	t.Setenv("APP_SHARE_PUBLIC__URL", "https://qa.maeumgido.app/")

	cfg, err := bootstrap.Config("qa")
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10*time.Second, cfg.Share.Timeout)
	assert.Equal(t, "https://qa.maeumgido.app/", cfg.Share.PublicURL)
}

// TestConfig_InvalidProfile verifies validation runs on the merged result.
func TestConfig_InvalidProfile(t *testing.T) {
	writeConfigs(t, map[string]string{
		"configs/broken.yaml": "log:\n  level: loud\n",
	})

	_, err := bootstrap.Config("broken")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

// TestConfig_CatalogPath verifies a configured catalog file replaces the embedded one.
func TestConfig_CatalogPath(t *testing.T) {
	dir := writeConfigs(t, map[string]string{
		"autumn.yaml":       customCatalog,
		"configs/base.yaml": "catalog:\n  path: autumn.yaml\n",
	})

	cfg, err := bootstrap.Config("")
	require.NoError(t, err)
	assert.Equal(t, "autumn.yaml", cfg.Catalog.Path)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalog, err := bootstrap.Catalog(context.Background(), cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	rec := catalog.Recommend(domain.Selection{Situation: "가을"})
	require.Len(t, rec.Items, 2)
	assert.Equal(t, "비 오는 날의 기도", rec.Items[0].Title)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "autumn.yaml"), []byte("prayers:\n  - id: x\n"), 0o644))

	_, err = bootstrap.Catalog(context.Background(), cfg, logger)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidCatalog(err))
}
