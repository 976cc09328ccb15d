package usecase

import (
	"sort"

	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
	hcdomain "github.com/x-xyz/ensmetadata/domain/healthcheck"
)

type impl struct {
	repo     hcdomain.HealthCheckRepo
	networks domain.Networks
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo, networks domain.Networks) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:     repo,
		networks: networks,
	}
}

// Check pings the upstreams of every network and stops at the first failure.
func (im *impl) Check(context ctx.Ctx) error {
	names := im.networks.Names()
	sort.Strings(names)
	for _, name := range names {
		network := im.networks[name]
		if err := im.repo.PingRpc(context, network); err != nil {
			return err
		}
		if err := im.repo.PingIndexer(context, network); err != nil {
			return err
		}
	}
	return nil
}
