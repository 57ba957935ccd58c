package navigator

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/hH-13/tilde/internal/application/port"
)

// Writer prints each destination on its own line. It backs dry runs and
// shell pipelines such as `tilde open --print g'golang | xargs firefox`.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

var _ port.Navigator = (*Writer)(nil)

// NewWriter creates a navigator printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (p *Writer) Open(_ context.Context, url string, _ bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := fmt.Fprintln(p.w, url); err != nil {
		return fmt.Errorf("failed to print url: %w", err)
	}
	return nil
}
