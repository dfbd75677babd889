package main

import (
	"fmt"
	"strings"

	"github.com/example/brushpaint/internal/appstate"
)

type titleOptions struct {
	Title     string
	LastSaved string
	Extras    []string
}

func windowTitle(opts titleOptions) string {
	base := strings.TrimSpace(opts.Title)
	if base == "" {
		base = appstate.ProgramTitle
	}
	parts := []string{base}

	extras := make([]string, 0, len(opts.Extras)+3)

	if saved := strings.TrimSpace(opts.LastSaved); saved != "" {
		extras = append(extras, fmt.Sprintf("last saved %s", saved))
	}

	if v := strings.TrimSpace(version); v != "" {
		extras = append(extras, fmt.Sprintf("v%s", v))
	}

	if c := strings.TrimSpace(commit); c != "" {
		extras = append(extras, fmt.Sprintf("commit %s", c))
	}

	if d := strings.TrimSpace(date); d != "" {
		extras = append(extras, d)
	}

	extras = append(extras, opts.Extras...)
	parts = append(parts, extras...)
	return strings.Join(parts, " - ")
}
