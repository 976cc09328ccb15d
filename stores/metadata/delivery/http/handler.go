package http

import (
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/delivery"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/domain"
)

type HandlerCfg struct {
	Networks domain.Networks
	Version  domain.VersionUseCase
	Metadata domain.MetadataUseCase
	// DataUri decodes the generated images
	DataUri domain.WebResourceReaderRepository
	// Host prefixes the image urls of metadata documents
	Host string
}

type handler struct {
	networks domain.Networks
	version  domain.VersionUseCase
	metadata domain.MetadataUseCase
	dataUri  domain.WebResourceReaderRepository
	host     string
}

func New(e *echo.Echo, cfg *HandlerCfg) {
	h := &handler{
		networks: cfg.Networks,
		version:  cfg.Version,
		metadata: cfg.Metadata,
		dataUri:  cfg.DataUri,
		host:     cfg.Host,
	}

	e.GET("/preview/:name", h.preview)

	g := e.Group("/:network/:contract/:tokenId")
	g.GET("", h.getMetadata)
	g.GET("/image", h.getImage)
}

type tokenPayload struct {
	Network  string `param:"network" validate:"required"`
	Contract string `param:"contract" validate:"required,address"`
	TokenId  string `param:"tokenId" validate:"required,tokenid"`
}

func (h *handler) getMetadata(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req, status, err := h.domainRequest(ctx, c, false)
	if err != nil {
		return delivery.MakeJsonResp(c, status, err)
	}

	m, err := h.metadata.GetDomain(ctx, req)
	if err != nil {
		ctx.WithField("err", err).Error("metadata.GetDomain failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeRawJsonResp(c, m)
}

func (h *handler) getImage(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req, status, err := h.domainRequest(ctx, c, true)
	if err != nil {
		return delivery.MakeJsonResp(c, status, err)
	}

	m, err := h.metadata.GetDomain(ctx, req)
	if err != nil {
		ctx.WithField("err", err).Error("metadata.GetDomain failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return h.serveImage(c, ctx, m)
}

func (h *handler) preview(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name string `param:"name" validate:"required"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	m, err := h.metadata.Preview(ctx, p.Name)
	if err != nil {
		ctx.WithFields(log.Fields{
			"name": p.Name,
			"err":  err,
		}).Warn("metadata.Preview failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return h.serveImage(c, ctx, m)
}

// domainRequest resolves the version of the requested token. The status is
// the one to answer with when err is not nil.
func (h *handler) domainRequest(ctx ctx.Ctx, c echo.Context, loadImages bool) (*domain.DomainRequest, int, error) {
	p := tokenPayload{}
	if err := c.Bind(&p); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if err := c.Validate(p); err != nil {
		return nil, http.StatusBadRequest, err
	}

	network, err := h.networks.Get(p.Network)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	contract := domain.Address(p.Contract)
	res, err := h.version.Resolve(ctx, network, contract, domain.ParseIdentifier(p.TokenId))
	if err != nil {
		ctx.WithFields(log.Fields{
			"network":  p.Network,
			"contract": p.Contract,
			"tokenId":  p.TokenId,
			"err":      err,
		}).Warn("version.Resolve failed")
		return nil, http.StatusInternalServerError, err
	}
	return &domain.DomainRequest{
		Network:         network,
		ContractAddress: contract,
		Identifier:      res.Id,
		Version:         res.Version,
		LoadImages:      loadImages,
		Host:            h.host,
	}, http.StatusOK, nil
}

func (h *handler) serveImage(c echo.Context, ctx ctx.Ctx, m *domain.Metadata) error {
	data, err := h.dataUri.Get(ctx, m.Image)
	if err != nil {
		ctx.WithFields(log.Fields{
			"name": m.Name,
			"err":  err,
		}).Error("dataUri.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeBlobResp(c, mimetype.Detect(data).String(), data)
}
