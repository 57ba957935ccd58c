package navigator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/hH-13/tilde/internal/application/port"
	"github.com/hH-13/tilde/internal/logging"
)

// errNoClipboard is returned when no clipboard backend is installed.
var errNoClipboard = errors.New("no clipboard tool available (install wl-clipboard, xclip or xsel)")

// Clipboard copies destinations to the system clipboard instead of opening
// them. Several destinations of one submission end up one per line.
type Clipboard struct {
	write       func(text string) error
	unsupported bool

	mu      sync.Mutex
	pending []string
}

var _ port.Navigator = (*Clipboard)(nil)

// NewClipboard returns a navigator writing to the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// Open adds url to the clipboard, keeping earlier URLs until Reset.
func (c *Clipboard) Open(ctx context.Context, url string, _ bool) error {
	log := logging.FromContext(ctx)

	if c.unsupported || c.write == nil {
		return errNoClipboard
	}

	c.mu.Lock()
	c.pending = append(c.pending, url)
	text := strings.Join(c.pending, "\n")
	c.mu.Unlock()

	if err := c.write(text); err != nil {
		log.Error().Err(err).Msg("clipboard write failed")
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	log.Debug().Int("len", len(text)).Msg("clipboard write success")
	return nil
}

// Reset starts a new clipboard selection for the next submission.
func (c *Clipboard) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}
