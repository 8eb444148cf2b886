package share

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen/maeumgido/internal/domain"
	"github.com/jsamuelsen/maeumgido/internal/ports"
)

// ManualHint introduces the block the user copies by hand.
const ManualHint = "아래 내용을 선택해 복사해 주세요."

const manualRule = "----------------------------------------"

// Manual prints the copy text between rules so the user can select it.
// It is the last resort when neither a share command nor a clipboard exists.
type Manual struct {
	w io.Writer
}

var _ ports.Sharer = (*Manual)(nil)

// NewManual writes to w, usually stdout.
func NewManual(w io.Writer) *Manual {
	return &Manual{w: w}
}

// Kind implements ports.Sharer.
func (m *Manual) Kind() ports.ShareKind {
	return ports.ShareKindManual
}

// Available implements ports.Sharer.
func (m *Manual) Available() bool {
	return m.w != nil
}

// Share implements ports.Sharer.
func (m *Manual) Share(ctx context.Context, payload domain.SharePayload) error {
	if m.w == nil {
		return domain.ErrShareUnavailable
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(ManualHint)
	b.WriteString("\n")
	b.WriteString(manualRule)
	b.WriteString("\n")
	b.WriteString(payload.CopyText())
	b.WriteString("\n")
	b.WriteString(manualRule)
	b.WriteString("\n")

	if _, err := io.WriteString(m.w, b.String()); err != nil {
		return fmt.Errorf("writing copy block: %w", err)
	}

	return nil
}
