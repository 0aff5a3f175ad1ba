package watch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitFor(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case p := <-ch:
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
		return ""
	}
}

func TestWatcher_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 16)
	w, err := New(path, func(p string) { changed <- p }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := waitFor(t, changed); got != w.Path() {
		t.Errorf("handler path = %q, want %q", got, w.Path())
	}
	if s := w.Stats(); s.Calls == 0 || s.Events == 0 {
		t.Errorf("Stats() = %+v, want calls and events", s)
	}
}

func TestWatcher_AtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 16)
	w, err := New(path, func(p string) { changed <- p }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer w.Close()

	tmp := filepath.Join(dir, "layout.toml.tmp")
	if err := os.WriteFile(tmp, []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	waitFor(t, changed)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")

	changed := make(chan string, 16)
	w, err := New(path, func(p string) { changed <- p }, WithDebounce(0))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-changed:
		t.Errorf("unexpected change for %q", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_HandlerPanic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.toml")

	calls := make(chan struct{}, 16)
	w, err := New(path, func(string) {
		calls <- struct{}{}
		panic("boom")
	}, WithDebounce(0))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer w.Close()

	for i := range 2 {
		if err := os.WriteFile(path, []byte{byte(i)}, 0o644); err != nil {
			t.Fatal(err)
		}
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatalf("write %d: handler not called", i)
		}
	}
	if s := w.Stats(); s.Errors == 0 {
		t.Errorf("Stats().Errors = 0, want panics counted")
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "x.toml"), nil); err == nil {
		t.Error("New with nil handler should fail")
	}
	if _, err := New(filepath.Join(t.TempDir(), "missing", "x.toml"), func(string) {}); err == nil {
		t.Error("New in missing directory should fail")
	}
}

func TestClose_Twice(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "x.toml"), func(string) {})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
	if err := w.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("second Close error = %v, want ErrWatcherClosed", err)
	}
}
