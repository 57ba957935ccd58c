// Package navigator opens resolved destinations: in the desktop browser,
// on the clipboard, or on a writer.
package navigator

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/hH-13/tilde/internal/application/port"
	"github.com/hH-13/tilde/internal/logging"
)

// runFunc starts a command without waiting for the browser to exit.
type runFunc func(ctx context.Context, name string, args ...string) error

func startDetached(_ context.Context, name string, args ...string) error {
	// Not tied to ctx: the browser must outlive the request that opened it.
	cmd := exec.Command(name, args...) //nolint:gosec // the URL is an argument, never a shell string
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Opener opens URLs with $BROWSER or the platform opener.
type Opener struct {
	command []string
	run     runFunc
}

var _ port.Navigator = (*Opener)(nil)

// NewOpener detects the opener. $BROWSER wins when set; "%s" in it marks
// where the URL goes, otherwise the URL is appended.
func NewOpener() *Opener {
	return newOpener(os.Getenv("BROWSER"), runtime.GOOS, startDetached)
}

func newOpener(browser, goos string, run runFunc) *Opener {
	o := &Opener{run: run}

	if fields := strings.Fields(browser); len(fields) > 0 {
		o.command = fields
		return o
	}

	switch goos {
	case "darwin":
		o.command = []string{"open"}
	case "windows":
		o.command = []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		o.command = []string{"xdg-open"}
	}
	return o
}

// Command returns the opener command line without the URL.
func (o *Opener) Command() []string {
	return append([]string(nil), o.command...)
}

// Open hands url to the opener. newTab is left to the browser: desktop
// openers always open a new tab or window.
func (o *Opener) Open(ctx context.Context, url string, newTab bool) error {
	log := logging.FromContext(ctx)

	args := make([]string, 0, len(o.command))
	placed := false
	for _, arg := range o.command[1:] {
		if strings.Contains(arg, "%s") {
			arg = strings.ReplaceAll(arg, "%s", url)
			placed = true
		}
		args = append(args, arg)
	}
	if !placed {
		args = append(args, url)
	}

	if err := o.run(ctx, o.command[0], args...); err != nil {
		log.Error().Err(err).Str("opener", o.command[0]).Msg("failed to open url")
		return fmt.Errorf("failed to run %s: %w", o.command[0], err)
	}

	log.Debug().Str("opener", o.command[0]).Str("url", url).Bool("new_tab", newTab).Msg("url opened")
	return nil
}
