package render

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/kvtree/btree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleConfig controls the console listing of a tree.
type ConsoleConfig struct {
	// LineWidth is the maximum line length in ‘en’s, i.e. fixed width
	// positions. Lines of nodes with more keys are cut off. 0 means unlimited.
	LineWidth int
	// Context determines the display width of keys. If nil, uax11.LatinContext
	// is used.
	Context *uax11.Context
	// Inner and Leaf are the colors for internal nodes and leaves. nil selects
	// the default palette.
	Inner *color.Color
	Leaf  *color.Color
}

// truncation marks a line which has been cut off at the line width.
const truncation = " ~"

var graphemeSetup sync.Once

// Console prints a tree to w, one node per line, indented by depth. Keys are
// aligned in columns of equal display width, so keys with wide (e.g., East
// Asian) characters line up with narrow ones.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (see ConfigFromTerminal).
func Console[K, V any](tree *btree.Tree[K, V], w io.Writer, config *ConsoleConfig) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	inner, leaf := config.Inner, config.Leaf
	if inner == nil {
		inner = color.New(color.FgBlue, color.Bold)
	}
	if leaf == nil {
		leaf = color.New(color.FgGreen)
	}
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	//
	type row struct {
		depth int
		leaf  bool
		keys  []string
	}
	var rows []row
	colwidth := 0
	tree.Walk(func(info btree.NodeInfo[K, V]) bool {
		keys := keyStrings(info)
		for _, k := range keys {
			colwidth = max(colwidth, displayWidth(k, context))
		}
		rows = append(rows, row{depth: info.Depth, leaf: info.Leaf, keys: keys})
		return true
	})
	if len(rows) == 0 {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	for _, r := range rows {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", r.depth))
		c := inner
		if r.leaf {
			b.WriteString("- ")
			c = leaf
		} else {
			b.WriteString("+ ")
		}
		used := 2*r.depth + 2
		for i, k := range r.keys {
			sep := 0
			if i > 0 {
				sep = 1
			}
			if config.LineWidth > 0 && used+sep+colwidth > config.LineWidth {
				b.WriteString(truncation)
				break
			}
			b.WriteString(strings.Repeat(" ", sep))
			b.WriteString(k)
			if i < len(r.keys)-1 {
				b.WriteString(strings.Repeat(" ", colwidth-displayWidth(k, context)))
			}
			used += sep + colwidth
		}
		if _, err := c.Fprintln(w, b.String()); err != nil {
			tracer().Errorf("btree console: %s", err.Error())
			return err
		}
	}
	return nil
}

func displayWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the LineWidth parameter accordingly. Context is derived from
// the user environment.
func ConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 20 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w - 2
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
