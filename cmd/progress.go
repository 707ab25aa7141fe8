package cmd

import (
	"fmt"
	"io"
	"sync"
)

// progress prints one self-overwriting status line per scrape stage
type progress struct {
	mu    sync.Mutex
	w     io.Writer
	stage string
}

func newProgress(w io.Writer) *progress {
	return &progress{w: w}
}

func (p *progress) Stage(stage string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stage = stage
	fmt.Fprintf(p.w, "\r\033[K⏳ %s...", stage)
}

func (p *progress) Done(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "\r\033[K✓ %s: %s\n", p.stage, fmt.Sprintf(format, args...))
}

func (p *progress) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "\r\033[K✗ %s: %v\n", p.stage, err)
}
