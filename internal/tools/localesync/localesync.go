// Package localesync keeps a directory of JSON locale files aligned with a
// source-of-truth file.
//
// The source file (en.json by default) is rewritten with its keys sorted.
// Every other *.json file in the directory is then rewritten with exactly the
// source keys, in the same order: existing values are kept, missing keys are
// filled with "" and keys unknown to the source are dropped.
package localesync

import (
	"context"
	"io"

	"github.com/go-git/go-billy/v5/osfs"
)

// Run synchronizes the locale files described by cfg. Status lines go to out
// and warnings to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir, err := ResolveDir(cfg.Dir, nil)
	if err != nil {
		return err
	}

	syncer := New(osfs.New(dir), cfg.Source, out, errOut, WithCheck(cfg.Check))
	_, err = syncer.Sync(ctx)
	return err
}
