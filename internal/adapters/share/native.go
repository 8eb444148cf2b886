// Package share implements the share strategies: a native share command,
// the system clipboard and a manual copy block written to the terminal.
package share

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jsamuelsen/maeumgido/internal/domain"
	"github.com/jsamuelsen/maeumgido/internal/ports"
)

// exitCancelled is what shells report after SIGINT; share helpers use it when
// the user closes the sheet.
const exitCancelled = 130

// Native hands a payload to an external share program such as termux-share
// or a desktop portal wrapper. The text goes to stdin; {title} and {url} in
// the args are replaced with the payload fields.
type Native struct {
	command string
	args    []string
	path    string
}

var _ ports.Sharer = (*Native)(nil)

// NewNative resolves command on PATH once. An empty or missing command makes
// the strategy unavailable.
func NewNative(command string, args []string) *Native {
	n := &Native{command: command, args: args}

	if command != "" {
		if path, err := exec.LookPath(command); err == nil {
			n.path = path
		}
	}

	return n
}

// Kind implements ports.Sharer.
func (n *Native) Kind() ports.ShareKind {
	return ports.ShareKindNative
}

// Available implements ports.Sharer.
func (n *Native) Available() bool {
	return n.path != ""
}

// Share runs the command and waits for it to exit.
func (n *Native) Share(ctx context.Context, payload domain.SharePayload) error {
	if !n.Available() {
		return domain.ErrShareUnavailable
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, n.path, expandArgs(n.args, payload)...)
	cmd.Stdin = strings.NewReader(payload.Text)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		return domain.ErrShareCancelled
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == exitCancelled {
		return domain.ErrShareCancelled
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s: %w: %s", n.command, err, msg)
	}

	return fmt.Errorf("%s: %w", n.command, err)
}

func expandArgs(args []string, payload domain.SharePayload) []string {
	r := strings.NewReplacer("{title}", payload.Title, "{url}", payload.URL)

	out := make([]string, len(args))
	for i, a := range args {
		out[i] = r.Replace(a)
	}

	return out
}
