// Package ports defines the interfaces the application layer depends on.
// Adapters implement them, so the recommendation and share logic never
// touches YAML files, exec, clipboards or HTTP directly.
//
// Port Design Principles:
//   - Context as first parameter on anything that may block
//   - Return domain types, never adapter-specific ones
//   - Errors use the domain sentinels (ErrNotFound, ErrShareCancelled, ...)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/maeumgido/internal/domain"
)

// PrayerSource supplies the raw catalog records once at startup.
type PrayerSource interface {
	// Load returns every prayer record in catalog order.
	// Returns an error wrapping domain.ErrInvalidCatalog for malformed data.
	Load(ctx context.Context) ([]domain.Prayer, error)
}

// ShareKind identifies a share strategy.
type ShareKind string

const (
	// ShareKindNative hands the payload to a platform share sheet.
	ShareKindNative ShareKind = "native"

	// ShareKindClipboard writes the copy text to the system clipboard.
	ShareKindClipboard ShareKind = "clipboard"

	// ShareKindManual presents the copy text for the user to select and copy.
	ShareKindManual ShareKind = "manual"
)

// Sharer is one way of getting a prayer out of the app.
// Implementations are probed in order and the first available one is used.
type Sharer interface {
	// Kind identifies the strategy.
	Kind() ShareKind

	// Available reports whether the capability exists on this platform.
	// It must be cheap and side-effect free.
	Available() bool

	// Share delivers the payload. Returns an error wrapping
	// domain.ErrShareCancelled when the user dismissed the dialog.
	Share(ctx context.Context, payload domain.SharePayload) error
}
