package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "table.csv")
	require.NoError(t, os.WriteFile(watched, []byte("id,name\n"), 0644))

	changed := make(chan string, 4)
	w, err := New([]string{watched}, func(path string) { changed <- path }, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	require.NoError(t, os.WriteFile(watched, []byte("id,name\nT1,changed\n"), 0644))

	select {
	case path := <-changed:
		abs, _ := filepath.Abs(watched)
		assert.Equal(t, abs, path)
	case <-time.After(3 * time.Second):
		t.Fatal("no change event within timeout")
	}
}

func TestWatcherCoalescesBurstToFinalContent(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "table.csv")
	require.NoError(t, os.WriteFile(watched, []byte("id,name\n"), 0644))

	changed := make(chan string, 8)
	w, err := New([]string{watched}, func(path string) {
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		changed <- string(content)
	}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	// Two rapid writes, like an editor saving in chunks. Only the final
	// content should reach the callback, after the burst settles.
	require.NoError(t, os.WriteFile(watched, []byte("id,name\nT1,partial\n"), 0644))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(watched, []byte("id,name\nT1,final\n"), 0644))

	select {
	case content := <-changed:
		assert.Equal(t, "id,name\nT1,final\n", content)
	case <-time.After(3 * time.Second):
		t.Fatal("no change event within timeout")
	}

	select {
	case content := <-changed:
		t.Fatalf("burst fired more than once, second content: %q", content)
	case <-time.After(800 * time.Millisecond):
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "table.csv")
	other := filepath.Join(dir, "unrelated.txt")
	require.NoError(t, os.WriteFile(watched, []byte("id\n"), 0644))

	changed := make(chan string, 4)
	w, err := New([]string{watched}, func(path string) { changed <- path }, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	require.NoError(t, os.WriteFile(other, []byte("noise"), 0644))

	select {
	case path := <-changed:
		t.Fatalf("unexpected event for %s", path)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotentAfterStart(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "steps.yaml")
	require.NoError(t, os.WriteFile(watched, []byte("[]\n"), 0644))

	w, err := New([]string{watched}, func(string) {}, nil)
	require.NoError(t, err)

	w.Start(context.Background())
	w.Stop()
	w.Stop()
}

func TestWatcherStopWithoutStartReleasesWatcher(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "steps.yaml")
	require.NoError(t, os.WriteFile(watched, []byte("[]\n"), 0644))

	w, err := New([]string{watched}, func(string) {}, nil)
	require.NoError(t, err)

	// Never started; Stop must still close the underlying fsnotify handle.
	w.Stop()
	w.Stop()
}
