package theme

import (
	"context"

	brutalerrors "github.com/alexisbeaulieu97/brutalist/pkg/errors"
)

type providerKey struct{}

// WithProvider returns a context carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider attached to ctx.
func FromContext(ctx context.Context) (*Provider, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(providerKey{}).(*Provider)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

// MustFromContext returns the provider attached to ctx and panics with a
// *errors.MisuseError when there is none or it has been unmounted.
func MustFromContext(ctx context.Context) *Provider {
	p, ok := FromContext(ctx)
	if !ok {
		panic(brutalerrors.NewMisuseError("theme.MustFromContext", "called outside a mounted theme provider"))
	}
	if !p.Mounted() {
		panic(brutalerrors.NewMisuseError("theme.MustFromContext", "theme provider has been unmounted"))
	}
	return p
}
