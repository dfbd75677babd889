package appstate

import (
	"io/fs"

	"github.com/example/brushpaint/internal/notify"
	"github.com/example/brushpaint/internal/theme"
	"github.com/example/brushpaint/internal/window"
)

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithOutput sets the file name used when saving the canvas.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithSaveDir sets the directory relative output names are saved under.
func WithSaveDir(dir string) Option { return func(a *AppState) { a.SaveDir = dir } }

// WithTheme sets the canvas and brush colours.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithShaders sets where shader sources are read from.
func WithShaders(fsys fs.FS) Option { return func(a *AppState) { a.Shaders = fsys } }

// WithWindow configures the window that Run opens.
func WithWindow(opts window.Options) Option { return func(a *AppState) { a.Window = opts } }

// WithBrush sets the stamped brush diameter in pixels and its gaussian sigma.
func WithBrush(size int, sigma float64) Option {
	return func(a *AppState) {
		a.BrushSize = size
		a.BrushSigma = sigma
	}
}

// WithNotifier routes save and copy notifications through n.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithTitle registers a function that renders the window title from the
// last saved path.
func WithTitle(fn func(lastSaved string) string) Option { return func(a *AppState) { a.titleFn = fn } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// WithShaderWatch rebuilds the shader programs whenever their files change
// inside dir. dir should be the directory Shaders reads from.
func WithShaderWatch(dir string) Option { return func(a *AppState) { a.watchDir = dir } }
