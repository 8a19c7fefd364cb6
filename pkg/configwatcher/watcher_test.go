package configwatcher

import (
	"academic_dashboard/internal/config"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `
store:
  driver: memory
storage:
  type: minio
notifications:
  poll_interval: 5s
`

func TestWatchConfigReloads(t *testing.T) {
	prev := debounce
	debounce = 20 * time.Millisecond
	t.Cleanup(func() { debounce = prev })

	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(baseConfig), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, file, func(cfg *config.Config) { reloaded <- cfg })
	}()

	// give the watcher time to register before the write
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte(`
store:
  driver: memory
storage:
  type: minio
notifications:
  poll_interval: 2s
`), 0644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 2*time.Second, cfg.Notifications.PollInterval)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "missing", "config.yaml"), func(*config.Config) {})
	assert.Error(t, err)
}
