// cmd_display.go - Fortschrittsanzeige fuer das Training
// Hauptfunktionen: newProgressLine, update, done
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/bpe-go/bpe/envconfig"
	"github.com/bpe-go/bpe/tokenizer"
)

// progressLine - Einzeilige Statusanzeige, die sich selbst ueberschreibt
type progressLine struct {
	w      io.Writer
	width  int
	target int
}

// newProgressLine - Liefert nil, wenn f kein Terminal ist oder
// BPE_NOPROGRESS gesetzt ist
func newProgressLine(f *os.File, target int) *progressLine {
	if envconfig.NoProgress() || !term.IsTerminal(int(f.Fd())) {
		return nil
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < 20 {
		width = 80
	}

	return &progressLine{w: f, width: width, target: target}
}

func (p *progressLine) update(e tokenizer.MergeEvent) {
	if p == nil {
		return
	}

	line := formatProgress(e, p.target)
	fmt.Fprintf(p.w, "\r\x1b[K%s", runewidth.Truncate(line, p.width-1, "…"))
}

func (p *progressLine) done() {
	if p == nil {
		return
	}
	fmt.Fprint(p.w, "\r\x1b[K")
}

// formatProgress - z.B. "merge 12/256 (104 101) -> 267 [he] x42"
func formatProgress(e tokenizer.MergeEvent, target int) string {
	return fmt.Sprintf("merge %d/%d (%d %d) -> %d [%s] x%d",
		e.ID-tokenizer.NumBaseTokens+1, target, e.Pair.Left, e.Pair.Right, e.ID, tokenizer.RenderToken(e.Token), e.Count)
}
