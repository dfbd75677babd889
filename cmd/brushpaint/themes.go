package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/example/brushpaint/internal/theme"
)

type themesCmd struct {
	*root
	fs *flag.FlagSet
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ExitOnError)
	cmd := &themesCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *themesCmd) Run() error {
	active := ""
	if c.activeTheme != nil {
		active = c.activeTheme.Name
	}
	fmt.Fprintln(os.Stdout, "available themes (* marks the active theme):")
	for _, name := range c.names() {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", marker, name)
	}
	return nil
}

// names lists embedded themes followed by any extra themes from the config.
func (c *themesCmd) names() []string {
	names := theme.EmbeddedNames()
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	var extra []string
	if c.config != nil {
		for n := range c.config.Themes {
			if !seen[n] {
				extra = append(extra, n)
			}
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
