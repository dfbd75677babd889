package notify

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/brushpaint/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func recorder(n *Notifier) *[]sent {
	var got []sent
	n.send = func(title, body string, opts platform.Options) error {
		_, err := os.Stat(opts.IconPath)
		got = append(got, sent{title, body, opts, opts.IconPath != "" && err == nil})
		return nil
	}
	return &got
}

func TestDisabledByDefault(t *testing.T) {
	n := New(DefaultPreferences())
	got := recorder(n)
	n.Save("x.png")
	n.Copy("", nil)
	if len(*got) != 0 {
		t.Fatalf("sent %d notifications while disabled", len(*got))
	}
	var nilNotifier *Notifier
	nilNotifier.Enable(EventSave, true)
	nilNotifier.Save("x.png")
}

func TestSaveUsesFileAsIcon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "painting.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n := New(DefaultPreferences())
	n.Enable(EventSave, true)
	got := recorder(n)
	n.Save(path)
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	s := (*got)[0]
	if s.title != "Brushpaint" || s.body != "Saved "+path {
		t.Fatalf("unexpected notification %+v", s)
	}
	if s.opts.IconPath != path {
		t.Fatalf("icon = %q, want %q", s.opts.IconPath, path)
	}
}

func TestCopyPreviewIsTemporary(t *testing.T) {
	n := New(DefaultPreferences())
	n.Enable(EventCopy, true)
	got := recorder(n)
	n.Copy("", image.NewRGBA(image.Rect(0, 0, 600, 300)))
	if len(*got) != 1 {
		t.Fatalf("sent %d notifications", len(*got))
	}
	s := (*got)[0]
	if s.body != "Copied canvas to clipboard" {
		t.Fatalf("body = %q", s.body)
	}
	if !s.iconExisted {
		t.Fatal("preview icon missing while notifying")
	}
	if _, err := os.Stat(s.opts.IconPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("preview not cleaned up: %v", err)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("BRUSHPAINT_NOTIFY_TITLE", "Paint")
	t.Setenv("BRUSHPAINT_NOTIFY_SAVE_TEXT", "Wrote %s")
	prefs := LoadPreferences()
	if prefs.Title != "Paint" {
		t.Fatalf("title = %q", prefs.Title)
	}
	n := New(prefs)
	if body := n.body(EventSave, " a.png "); body != "Wrote a.png" {
		t.Fatalf("body = %q", body)
	}
	if !strings.Contains(n.body(EventCopy, "canvas"), "clipboard") {
		t.Fatalf("copy template lost")
	}
}

func TestThumbnailSize(t *testing.T) {
	tests := []struct{ w, h, ww, wh int }{
		{64, 32, 64, 32},
		{600, 300, 128, 64},
		{300, 600, 64, 128},
		{1000, 1, 128, 1},
	}
	for _, tc := range tests {
		if w, h := thumbnailSize(tc.w, tc.h); w != tc.ww || h != tc.wh {
			t.Errorf("thumbnailSize(%d, %d) = %d, %d; want %d, %d", tc.w, tc.h, w, h, tc.ww, tc.wh)
		}
	}
}
