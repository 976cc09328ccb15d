package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/domain/avatar"
	"github.com/x-xyz/ensmetadata/service/chain"
	"github.com/x-xyz/ensmetadata/service/chain/contract"
	"github.com/x-xyz/ensmetadata/service/ens"
)

const svgMimeType = "image/svg+xml"

type AvatarUseCaseCfg struct {
	ChainClient chain.Client
	Erc721      contract.Erc721Contract
	Erc1155     contract.Erc1155Contract
	Ens         ens.ENS
	WebResource domain.WebResourceUseCase
}

type avatarUseCase struct {
	chainClient chain.Client
	erc721      contract.Erc721Contract
	erc1155     contract.Erc1155Contract
	ens         ens.ENS
	webResource domain.WebResourceUseCase
}

func NewAvatarUseCase(cfg *AvatarUseCaseCfg) avatar.UseCase {
	return &avatarUseCase{
		chainClient: cfg.ChainClient,
		erc721:      cfg.Erc721,
		erc1155:     cfg.Erc1155,
		ens:         cfg.Ens,
		webResource: cfg.WebResource,
	}
}

type nftMetadata struct {
	Image     string `json:"image"`
	ImageUrl  string `json:"image_url"`
	ImageData string `json:"image_data"`
}

func (u *avatarUseCase) GetMeta(c bCtx.Ctx, network domain.NetworkCfg, text string, owner domain.Address) (json.RawMessage, error) {
	ref, err := avatar.Parse(text)
	if err != nil {
		return nil, err
	}
	if ref.Kind == avatar.KindURI {
		return json.Marshal(map[string]string{"image": u.webResource.NormalizeURI(ref.URI.Raw)})
	}
	return u.getNftMeta(c, ref.NFT, owner)
}

func (u *avatarUseCase) getNftMeta(c bCtx.Ctx, nft *avatar.NFTRef, owner domain.Address) (json.RawMessage, error) {
	ctx := bCtx.WithLogFields(c, log.Fields{
		"chainId":  nft.ChainId,
		"contract": nft.ContractAddress,
		"tokenId":  nft.TokenId.String(),
	})
	chainId := int32(nft.ChainId)
	if !u.chainClient.Supports(chainId) {
		return nil, domain.Errorf(domain.KindUnsupportedNetwork, "chain %d is not supported", chainId)
	}
	addr := string(nft.ContractAddress)

	var uri string
	switch nft.Namespace {
	case avatar.NamespaceErc721:
		tokenUri, err := u.erc721.TokenURI(ctx, chainId, addr, nft.TokenId)
		if err != nil {
			ctx.WithField("err", err).Warn("erc721.TokenURI failed")
			return nil, domain.NewError(domain.KindRetrieveURIFailed, "failed to read token uri").Wrap(err)
		}
		if !owner.IsEmpty() {
			tokenOwner, err := u.erc721.OwnerOf(ctx, chainId, addr, nft.TokenId)
			if err != nil || !tokenOwner.Equals(owner) {
				ctx.WithFields(log.Fields{
					"err":   err,
					"owner": owner,
				}).Warn("nft is not owned by the name owner")
				return nil, domain.Errorf(domain.KindOwnerNotFound, "%s is not the owner of the nft", owner)
			}
		}
		uri = tokenUri
	case avatar.NamespaceErc1155:
		tokenUri, err := u.erc1155.Uri(ctx, chainId, addr, nft.TokenId)
		if err != nil {
			ctx.WithField("err", err).Warn("erc1155.Uri failed")
			return nil, domain.NewError(domain.KindRetrieveURIFailed, "failed to read token uri").Wrap(err)
		}
		if !owner.IsEmpty() {
			balance, err := u.erc1155.BalanceOf(ctx, chainId, addr, owner, nft.TokenId)
			if err != nil || balance.Sign() <= 0 {
				ctx.WithFields(log.Fields{
					"err":   err,
					"owner": owner,
				}).Warn("nft is not owned by the name owner")
				return nil, domain.Errorf(domain.KindOwnerNotFound, "%s is not the owner of the nft", owner)
			}
		}
		uri = strings.ReplaceAll(tokenUri, "{id}", fmt.Sprintf("%064x", nft.TokenId))
	default:
		return nil, domain.Errorf(domain.KindUnsupportedNamespace, "unsupported namespace: %s", nft.Namespace)
	}

	if uri == "" {
		return nil, domain.NewError(domain.KindRetrieveURIFailed, "token uri is empty")
	}
	data, err := u.webResource.GetJson(ctx, uri)
	if err != nil || data == nil {
		ctx.WithFields(log.Fields{
			"uri": uri,
			"err": err,
		}).Warn("webResource.GetJson failed")
		return nil, domain.Errorf(domain.KindRetrieveURIFailed, "failed to retrieve metadata from %s", uri).Wrap(err)
	}
	return data, nil
}

func (u *avatarUseCase) GetImage(c bCtx.Ctx, network domain.NetworkCfg, text string, owner domain.Address) (*avatar.Image, error) {
	ref, err := avatar.Parse(text)
	if err != nil {
		return nil, err
	}

	imageUri := ""
	if ref.Kind == avatar.KindURI {
		imageUri = ref.URI.Raw
	} else {
		raw, err := u.getNftMeta(c, ref.NFT, owner)
		if err != nil {
			return nil, err
		}
		meta := nftMetadata{}
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, domain.NewError(domain.KindRetrieveURIFailed, "invalid nft metadata").Wrap(err)
		}
		if meta.ImageData != "" {
			return u.toImage(c, []byte(meta.ImageData))
		}
		imageUri = meta.Image
		if imageUri == "" {
			imageUri = meta.ImageUrl
		}
		if imageUri == "" {
			return nil, domain.NewError(domain.KindRetrieveURIFailed, "there is no image in nft metadata")
		}
	}

	data, err := u.webResource.Get(c, imageUri)
	if err != nil {
		c.WithFields(log.Fields{
			"uri": imageUri,
			"err": err,
		}).Warn("webResource.Get failed")
		return nil, domain.Errorf(domain.KindRetrieveURIFailed, "failed to retrieve image from %s", imageUri).Wrap(err)
	}
	if data == nil {
		return nil, nil
	}
	return u.toImage(c, data)
}

func (u *avatarUseCase) toImage(c bCtx.Ctx, data []byte) (*avatar.Image, error) {
	mimeType := mimetype.Detect(data).String()
	if strings.HasPrefix(mimeType, svgMimeType) {
		sanitized, err := SanitizeSVG(data)
		if err != nil {
			c.WithField("err", err).Warn("SanitizeSVG failed")
			return nil, domain.NewError(domain.KindRetrieveURIFailed, "invalid svg image").Wrap(err)
		}
		return &avatar.Image{Data: sanitized, MimeType: svgMimeType}, nil
	}
	if !strings.HasPrefix(mimeType, "image/") {
		c.WithField("mimeType", mimeType).Warn("unexpected avatar media type")
		return nil, domain.Errorf(domain.KindRetrieveURIFailed, "unsupported media type %s", mimeType)
	}
	return &avatar.Image{Data: data, MimeType: mimeType}, nil
}

// avatarOf reads the avatar record of name together with the address that has
// to own a referenced nft. Names held by the NameWrapper skip the ownership check.
func (u *avatarUseCase) avatarOf(c bCtx.Ctx, network domain.NetworkCfg, name string) (string, domain.Address, error) {
	text, err := u.ens.Text(c, network, name, avatar.TextKeyAvatar)
	if err != nil {
		return "", "", err
	}
	owner, err := u.ens.Owner(c, network, name)
	if err != nil || owner.Equals(network.NameWrapper) {
		owner = ""
	}
	return text, owner, nil
}

func (u *avatarUseCase) GetImageByName(c bCtx.Ctx, network domain.NetworkCfg, name string) (*avatar.Image, error) {
	text, owner, err := u.avatarOf(c, network, name)
	if err != nil {
		return nil, err
	}
	img, err := u.GetImage(c, network, text, owner)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, domain.Errorf(domain.KindRetrieveURIFailed, "failed to retrieve avatar of %s", name)
	}
	return img, nil
}

func (u *avatarUseCase) GetMetaByName(c bCtx.Ctx, network domain.NetworkCfg, name string) (json.RawMessage, error) {
	text, owner, err := u.avatarOf(c, network, name)
	if err != nil {
		return nil, err
	}
	return u.GetMeta(c, network, text, owner)
}
