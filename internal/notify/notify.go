package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/brushpaint/internal/platform"
	"github.com/example/brushpaint/internal/render"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave emits a notification when the canvas is written to disk.
	EventSave Event = "save"
	// EventCopy emits a notification when the canvas is copied to the clipboard.
	EventCopy Event = "copy"
)

// previewSize bounds the longest edge of clipboard notification previews.
const previewSize = 128

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "Brushpaint",
		Events: map[Event]EventPreference{
			EventSave: {Template: "Saved %s"},
			EventCopy: {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences reads configuration from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("BRUSHPAINT_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("BRUSHPAINT_NOTIFY_SAVE_TEXT", EventSave)
	apply("BRUSHPAINT_NOTIFY_COPY_TEXT", EventCopy)
	return prefs
}

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    func(title, body string, opts platform.Options) error
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: platform.Notify}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Save sends a save notification using the written file as its icon.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, statErr := os.Stat(abs); statErr == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventSave, detail, opts)
}

// Copy sends a clipboard notification with an optional thumbnail of img.
func (n *Notifier) Copy(detail string, img image.Image) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "canvas"
	}
	opts := platform.Options{}
	if img != nil {
		if path, cleanup, err := createPreview(img); err != nil {
			log.Printf("notification preview: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(EventCopy, detail, opts)
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil || n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	body := n.body(event, detail)
	if body == "" || n.send == nil {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) body(event Event, detail string) string {
	pref, ok := n.prefs.Events[event]
	if !ok {
		return ""
	}
	template := strings.TrimSpace(pref.Template)
	if template == "" {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
}

// thumbnailSize fits w by h inside a previewSize square keeping the aspect
// ratio. Images already small enough keep their size.
func thumbnailSize(w, h int) (int, int) {
	if w <= previewSize && h <= previewSize {
		return w, h
	}
	if w >= h {
		return previewSize, max(1, h*previewSize/w)
	}
	return max(1, w*previewSize/h), previewSize
}

func createPreview(img image.Image) (string, func(), error) {
	b := img.Bounds()
	tw, th := thumbnailSize(b.Dx(), b.Dy())
	thumb := render.Scale(img, tw, th)

	f, err := os.CreateTemp("", "brushpaint-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, thumb); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}
