package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/ensmetadata/app/bootstrap"
	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/log"
	bValidator "github.com/x-xyz/ensmetadata/base/validator"
	mmiddleware "github.com/x-xyz/ensmetadata/middleware"
	avatar_delivery "github.com/x-xyz/ensmetadata/stores/avatar/delivery/http"
	hc_delivery "github.com/x-xyz/ensmetadata/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/ensmetadata/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/ensmetadata/stores/healthcheck/usecase"
	metadata_delivery "github.com/x-xyz/ensmetadata/stores/metadata/delivery/http"
)

func init() {
	configPath := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()
	if err := bootstrap.ReadConfig(*configPath); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		if err := log.Init(true); err != nil {
			panic(err)
		}
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)

	context := ctx.Background()

	context.Info("init use cases")
	uc := bootstrap.New(context)
	e.Validator = bValidator.NewCustomValidator(validator.New(), uc.Networks.Names())

	hc := hc_usecase.New(hc_repo.New(uc.ChainClient, uc.Indexer), uc.Networks)

	hc_delivery.New(e, hc)
	metadata_delivery.New(e, &metadata_delivery.HandlerCfg{
		Networks: uc.Networks,
		Version:  uc.Version,
		Metadata: uc.Metadata,
		DataUri:  uc.DataUri,
		Host:     viper.GetString("server.host"),
	})
	avatar_delivery.New(e, uc.Networks, uc.Avatar)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
