package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/brushpaint/internal/config"
	"github.com/example/brushpaint/internal/notify"
	"github.com/example/brushpaint/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	saveAlerts  bool
	copyAlerts  bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("brushpaint", flag.ExitOnError),
		program:  "brushpaint",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving the canvas")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")

	// Precedence: CLI > Env > Config > Default. An empty flag falls through.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use ("+strings.Join(theme.EmbeddedNames(), ", ")+")")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := "paint"
	var subArgs []string
	if r.fs.NArg() > 0 {
		cmdName = r.fs.Arg(0)
		subArgs = r.fs.Args()[1:]
	}

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "paint":
		cmd, err = parsePaintCmd(subArgs, r)
	case "brush":
		cmd, err = parseBrushCmd(subArgs, r)
	case "themes":
		cmd, err = parseThemesCmd(subArgs, r)
	case "shaders":
		cmd, err = parseShadersCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("BRUSHPAINT_THEME")
	}
	if name == "" && r.config != nil {
		name = r.config.Theme
	}
	if r.config != nil {
		if t, ok := r.config.Themes[name]; ok {
			return t
		}
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "" && name != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
