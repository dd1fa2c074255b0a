package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
	"unicode"

	"golang.org/x/term"

	"github.com/dmitrijs2005/cineia/internal/client/catalog"
	"github.com/dmitrijs2005/cineia/internal/client/render"
)

// Terminal seams, swapped in tests.
var (
	isTerminal  = term.IsTerminal
	makeRaw     = term.MakeRaw
	restoreTerm = term.Restore
)

const (
	keyCtrlC     = 0x03
	keyBackspace = 0x08
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// crlfWriter turns "\n" into "\r\n" for a terminal in raw mode.
type crlfWriter struct{ w io.Writer }

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (a *App) searchDebounce() time.Duration {
	if a.config == nil {
		return catalog.DefaultDebounce
	}
	return a.config.SearchDebounce
}

// Find is the live search: results refresh after each pause in typing.
// Enter or Esc leaves; on a terminal, keys are read in raw mode.
func (a *App) Find(ctx context.Context) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	if err := a.requireCatalog(ctx); err != nil {
		return err
	}

	w := a.out
	fd := int(os.Stdin.Fd())
	if a.in == os.Stdin && isTerminal(fd) {
		old, err := makeRaw(fd)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer func() { _ = restoreTerm(fd, old) }()
		w = crlfWriter{w: a.out}
	}
	return a.liveSearch(ctx, a.reader, w, a.searchDebounce())
}

func (a *App) liveSearch(ctx context.Context, rd *bufio.Reader, w io.Writer, delay time.Duration) error {
	fmt.Fprintln(w, "Digite para buscar (Enter ou Esc para sair)")

	var mu sync.Mutex
	show := func(q string) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, "\n> %s\n", q)
		_ = render.SearchText(w, a.catalog.Search(q))
	}

	d := catalog.NewDebouncer(delay)
	defer d.Stop()

	var query []rune
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, _, err := rd.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.Stop()
				show(string(query))
				return nil
			}
			return err
		}

		switch {
		case r == '\r' || r == '\n' || r == keyEscape:
			d.Stop()
			show(string(query))
			return nil
		case r == keyCtrlC:
			return nil
		case r == keyDelete || r == keyBackspace:
			if len(query) > 0 {
				query = query[:len(query)-1]
			}
		case unicode.IsPrint(r):
			query = append(query, r)
		default:
			continue
		}

		q := string(query)
		d.Trigger(func() { show(q) })
	}
}
