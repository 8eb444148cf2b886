package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// authHeaderPattern matches Authorization header values forwarded by proxies.
	authHeaderPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+\S+$`)

	// secretURLPattern matches URLs carrying userinfo or a token-like query
	// parameter, as native share commands pointing at webhooks tend to.
	secretURLPattern = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://([^/@\s]+@|[^\s]*[?&](token|key|sig|signature|secret)=)`)
)

// DefaultRedactOptions returns the masq options applied to every handler.
// The service holds no credentials of its own, but share command arguments
// and forwarded headers can still carry them.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("authorization"),
		masq.WithFieldName("cookie"),
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldName("api_key"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(authHeaderPattern),
		masq.WithRegex(secretURLPattern),
	}
}

// NewReplaceAttr returns a slog ReplaceAttr func redacting DefaultRedactOptions
// plus any extra options.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
