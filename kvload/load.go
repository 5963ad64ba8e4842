package kvload

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/kvtree/btree"
)

// Some defaults for loading
const (
	defaultSeparator = "\t"
	defaultBacklog   = 64
	maxLineLength    = 1 << 20
)

// Options control parsing of input lines.
type Options struct {
	// Separator splits a line into key and value at its first occurrence.
	// Defaults to a tab.
	Separator string
	// TrimSpace removes surrounding white space from keys and values.
	TrimSpace bool
	// Strict makes lines without a separator an error. Otherwise such lines
	// are skipped.
	Strict bool
	// Backlog is the number of parsed entries which may wait for insertion.
	// Defaults to 64.
	Backlog uint
}

func (opts *Options) normalized() Options {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Separator == "" {
		o.Separator = defaultSeparator
	}
	if o.Backlog == 0 {
		o.Backlog = defaultBacklog
	}
	return o
}

// Stats reports the outcome of a load.
type Stats struct {
	Lines    int // lines read
	Entries  int // entries inserted into the tree
	Skipped  int // blank, comment and malformed lines
	Rejected int // entries not inserted because the tree refused them
}

// endOfInput is broadcast after the last entry.
type endOfInput struct{}

// Load reads entries from r and inserts them into tree. opts may be nil.
//
// Load stops reading if ctx is cancelled, on read errors and, in strict mode,
// on malformed lines. Entries parsed up to this point are inserted. If the
// tree refuses an entry (e.g., because its node budget is exhausted), all
// further entries are rejected and the tree error is returned.
func Load(ctx context.Context, r io.Reader, tree *btree.Tree[string, string], opts *Options) (Stats, error) {
	var stats Stats
	if tree == nil {
		return stats, fmt.Errorf("kvload: tree is nil")
	}
	o := opts.normalized()
	cast := caster.New(nil) // we will broadcast entries when they are parsed
	defer cast.Close()
	sub, ok := cast.Sub(context.Background(), o.Backlog)
	if !ok {
		return stats, fmt.Errorf("kvload: cannot subscribe to entry broadcast")
	}
	done := make(chan struct{})
	var insertErr error
	go func(ch <-chan interface{}) {
		// the single writer to tree
		defer close(done)
		for msg := range ch {
			switch m := msg.(type) {
			case endOfInput:
				return
			case btree.Entry[string, string]:
				if insertErr != nil {
					stats.Rejected++
					continue
				}
				if err := tree.Insert(m.Key, m.Value); err != nil {
					tracer().Errorf("kvload: entry %q rejected: %v", m.Key, err)
					insertErr = err
					stats.Rejected++
					continue
				}
				stats.Entries++
			}
		}
	}(sub)
	readErr := readEntries(ctx, r, o, &stats, func(e btree.Entry[string, string]) bool {
		return cast.Pub(e)
	})
	cast.Pub(endOfInput{})
	<-done
	tracer().Infof("kvload: %d lines, %d entries, %d skipped, %d rejected",
		stats.Lines, stats.Entries, stats.Skipped, stats.Rejected)
	if readErr != nil {
		return stats, readErr
	}
	return stats, insertErr
}

// LoadFile opens a file, which must be a regular text file, and loads its
// entries into tree.
func LoadFile(ctx context.Context, name string, tree *btree.Tree[string, string], opts *Options) (Stats, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return Stats{}, err
	} else if !fi.Mode().IsRegular() {
		return Stats{}, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return Stats{}, err
	}
	defer file.Close()
	tracer().Debugf("kvload: loading %s (%d bytes)", name, fi.Size())
	return Load(ctx, file, tree, opts)
}

// readEntries parses lines from r and hands entries to publish, until input
// is exhausted, ctx is done or publish returns false.
func readEntries(ctx context.Context, r io.Reader, o Options, stats *Stats,
	publish func(btree.Entry[string, string]) bool) error {
	//
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Lines++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			stats.Skipped++
			continue
		}
		key, value, found := strings.Cut(line, o.Separator)
		if !found {
			if o.Strict {
				return fmt.Errorf("%w: line %d has no separator", ErrMalformedLine, stats.Lines)
			}
			tracer().Infof("kvload: skipping line %d without separator", stats.Lines)
			stats.Skipped++
			continue
		}
		if o.TrimSpace {
			key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		}
		if !publish(btree.Entry[string, string]{Key: key, Value: value}) {
			return fmt.Errorf("kvload: entry broadcast closed at line %d", stats.Lines)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("kvload: reading input: %w", err)
	}
	return nil
}
