package domain

import (
	"github.com/x-xyz/ensmetadata/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceUseCase interface {
	// Get fetches any supported uri; a timeout or network failure yields nil, nil.
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	// NormalizeURI rewrites ipfs/ipns/ar locations to their gateway urls.
	NormalizeURI(string) string
}
