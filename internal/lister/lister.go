package lister

import (
	"context"
	"fmt"
	"io"

	"distlist/internal/config"
	"distlist/internal/entry"
	"distlist/internal/walk"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type Lister struct {
	fs  afero.Fs
	cfg config.Config
	log *clog.Logger
}

func New(fs afero.Fs, cfg config.Config, log *clog.Logger) *Lister {
	if log == nil {
		log = clog.New(io.Discard)
	}
	return &Lister{fs: fs, cfg: cfg, log: log}
}

// Run writes one line per file under the configured root and returns how many
// lines it wrote.
func (l *Lister) Run(ctx context.Context, w io.Writer) (int, error) {
	l.log.Debug("walking", "root", l.cfg.Root, "strip", l.cfg.Strip)

	paths, err := walk.Files(l.fs, l.cfg.Root)
	if err != nil {
		return 0, fmt.Errorf("failed to walk %s: %w", l.cfg.Root, err)
	}
	if len(paths) == 0 {
		l.log.Debug("no files found", "root", l.cfg.Root)
		return 0, nil
	}

	n := 0
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if _, err := fmt.Fprintln(w, entry.Format(p, l.cfg.Strip)); err != nil {
			return n, fmt.Errorf("failed to write %s: %w", p, err)
		}
		n++
	}

	l.log.Debug("listed files", "count", n)
	return n, nil
}
