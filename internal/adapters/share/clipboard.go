package share

import (
	"context"

	"github.com/atotto/clipboard"

	"github.com/jsamuelsen/maeumgido/internal/domain"
	"github.com/jsamuelsen/maeumgido/internal/ports"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// Clipboard writes the copy text to the system clipboard.
type Clipboard struct {
	unsupported bool
}

var _ ports.Sharer = (*Clipboard)(nil)

// NewClipboard probes for a clipboard tool (pbcopy, xclip, xsel, wl-copy, ...).
func NewClipboard() *Clipboard {
	return &Clipboard{unsupported: clipboard.Unsupported}
}

// Kind implements ports.Sharer.
func (c *Clipboard) Kind() ports.ShareKind {
	return ports.ShareKindClipboard
}

// Available implements ports.Sharer.
func (c *Clipboard) Available() bool {
	return !c.unsupported
}

// Share copies the text followed by a blank line and the URL.
func (c *Clipboard) Share(ctx context.Context, payload domain.SharePayload) error {
	if c.unsupported {
		return domain.ErrShareUnavailable
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return clipboardWriteAll(payload.CopyText())
}
