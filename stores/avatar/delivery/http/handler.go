package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/delivery"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/domain/avatar"
)

type handler struct {
	networks domain.Networks
	avatar   avatar.UseCase
}

func New(e *echo.Echo, networks domain.Networks, avatar avatar.UseCase) {
	h := &handler{
		networks: networks,
		avatar:   avatar,
	}

	g := e.Group("/:network/avatar/:name")
	g.GET("", h.getImage)
	g.GET("/meta", h.getMeta)
}

type payload struct {
	Network string `param:"network" validate:"required"`
	Name    string `param:"name" validate:"required"`
}

func (h *handler) bind(c echo.Context) (payload, domain.NetworkCfg, error) {
	p := payload{}
	if err := c.Bind(&p); err != nil {
		return p, domain.NetworkCfg{}, err
	}
	if err := c.Validate(p); err != nil {
		return p, domain.NetworkCfg{}, err
	}
	network, err := h.networks.Get(p.Network)
	return p, network, err
}

func (h *handler) getImage(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p, network, err := h.bind(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	img, err := h.avatar.GetImageByName(ctx, network, p.Name)
	if err != nil {
		ctx.WithFields(log.Fields{
			"name": p.Name,
			"err":  err,
		}).Warn("avatar.GetImageByName failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeBlobResp(c, img.MimeType, img.Data)
}

func (h *handler) getMeta(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p, network, err := h.bind(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	meta, err := h.avatar.GetMetaByName(ctx, network, p.Name)
	if err != nil {
		ctx.WithFields(log.Fields{
			"name": p.Name,
			"err":  err,
		}).Warn("avatar.GetMetaByName failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeRawJsonResp(c, meta)
}
