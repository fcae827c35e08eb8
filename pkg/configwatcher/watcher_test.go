package configwatcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learner_insights_backend/internal/config"
)

func writeConfig(t *testing.T, path, version string) {
	t.Helper()
	body := fmt.Sprintf(`server:
  mode: debug
storage:
  type: local
  local_path: %s
prediction:
  model_version: "%s"
`, filepath.Join(filepath.Dir(path), "uploads"), version)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "1.0")

	var version atomic.Value
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, path, func(cfg *config.Config) {
			version.Store(cfg.Prediction.ModelVersion)
		})
	}()

	// 等待 watcher 注册完成
	time.Sleep(100 * time.Millisecond)
	writeConfig(t, path, "2.0")

	assert.Eventually(t, func() bool {
		v, _ := version.Load().(string)
		return v == "2.0"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchConfigIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "1.0")

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go WatchConfig(ctx, path, func(*config.Config) { calls.Add(1) })

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o644))

	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}
