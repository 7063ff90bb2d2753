/*
Package formatter prints suffix trees to consoles with fixed-width fonts.

Trees are printed one edge per line, indented by depth. Edge labels are cut
to the configured line width, which is measured in fixed-width positions
(“en”s) according to UAX#11, so that wide East Asian characters and emoji
are accounted for. Colors distinguish internal edges from leaves and
terminals from items.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package formatter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/suffixtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// tracer writes to trace with key 'suffixtree'
func tracer() tracing.Trace {
	return tracing.Select("suffixtree")
}

// ErrIllegalArguments is returned for missing parameters.
var ErrIllegalArguments = errors.New("formatter: illegal arguments")

// Config holds parameters for printing.
type Config struct {
	LineWidth int            // maximum line width in en
	Indent    int            // en per tree level, default 2
	Context   *uax11.Context // context for character width, default uax11.LatinContext
	Palette   *Palette       // colors, default DefaultPalette
}

func (c *Config) normalized() Config {
	var conf Config
	if c != nil {
		conf = *c
	}
	if conf.LineWidth <= 0 {
		conf.LineWidth = 65
	}
	if conf.Indent <= 0 {
		conf.Indent = 2
	}
	if conf.Context == nil {
		conf.Context = uax11.LatinContext
	}
	if conf.Palette == nil {
		conf.Palette = &DefaultPalette
	}
	return conf
}

// Palette holds the colors used for the parts of a tree.
type Palette struct {
	Inner    *color.Color // internal edges
	Leaf     *color.Color // leaf edges
	Terminal *color.Color // terminal sentinels
	Info     *color.Color // node IDs and positions
}

// DefaultPalette is the palette used if a Config does not name one.
var DefaultPalette = Palette{
	Inner:    color.New(color.FgBlue),
	Leaf:     color.New(color.FgGreen),
	Terminal: color.New(color.FgRed),
	Info:     color.New(color.Faint),
}

var setupGraphemes sync.Once

// PrintTree outputs tree to w, one edge per line. Internal edges are followed
// by the ID of the node they lead to, leaf edges by an arrow.
func PrintTree[I comparable](tree *suffixtree.Tree[I], w io.Writer, config *Config) error {
	if tree == nil || w == nil {
		return ErrIllegalArguments
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	conf := config.normalized()
	conf.Palette.Info.Fprintf(w, "(%d)\n", tree.Root())
	count := 0
	for info := range tree.Edges() {
		indent := (info.Level + 1) * conf.Indent
		io.WriteString(w, strings.Repeat(" ", indent))
		suffixLen := 2 // " →"
		if info.Child != suffixtree.NoNode {
			suffixLen = len(fmt.Sprintf(" (%d)", info.Child))
		}
		printLabel(w, info, conf, conf.LineWidth-indent-suffixLen)
		if info.Child == suffixtree.NoNode {
			conf.Palette.Info.Fprint(w, " →")
		} else {
			conf.Palette.Info.Fprintf(w, " (%d)", info.Child)
		}
		io.WriteString(w, "\n")
		count++
	}
	tracer().P("format", "console").Debugf("printed %d edges", count)
	return nil
}

// printLabel prints the symbols of an edge label, cut to width en.
func printLabel[I comparable](w io.Writer, info suffixtree.EdgeInfo[I], conf Config, width int) {
	c := conf.Palette.Inner
	if info.Child == suffixtree.NoNode {
		c = conf.Palette.Leaf
	}
	if width < 1 {
		width = 1
	}
	for i, sym := range info.Label {
		s := sym.String()
		wd := StringWidth(s, conf.Context)
		if wd > width || (wd == width && i < len(info.Label)-1) {
			c.Fprint(w, "…")
			return
		}
		if sym.IsTerminal() {
			conf.Palette.Terminal.Fprint(w, s)
		} else {
			c.Fprint(w, s)
		}
		width -= wd
	}
}

// StringWidth returns the width of s in en, according to UAX#11.
func StringWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Config.Context is created
// based on heuristics from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			config.LineWidth = lineWidthFor(w)
		}
	} else {
		config.LineWidth = 65
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

func lineWidthFor(w int) int {
	if w > 65 {
		return w - 10
	} else if w > 30 {
		return w - 5
	} else if w > 10 {
		return w
	}
	return 10
}
