package avatar

import (
	"encoding/json"

	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
)

const (
	TextKeyAvatar = "avatar"
	// TextKeyImage holds an explicit NFT image overriding the generated one.
	TextKeyImage = "image"
)

type Image struct {
	Data     []byte
	MimeType string
}

type UseCase interface {
	// GetMeta returns the json metadata the record points to.
	GetMeta(c ctx.Ctx, network domain.NetworkCfg, text string, owner domain.Address) (json.RawMessage, error)
	// GetImage returns nil without error when the image could not be fetched in time.
	GetImage(c ctx.Ctx, network domain.NetworkCfg, text string, owner domain.Address) (*Image, error)
	GetImageByName(c ctx.Ctx, network domain.NetworkCfg, name string) (*Image, error)
	GetMetaByName(c ctx.Ctx, network domain.NetworkCfg, name string) (json.RawMessage, error)
}
