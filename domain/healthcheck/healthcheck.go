package healthcheck

import (
	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo checks the upstreams a network resolves names against
type HealthCheckRepo interface {
	PingRpc(context ctx.Ctx, network domain.NetworkCfg) error
	PingIndexer(context ctx.Ctx, network domain.NetworkCfg) error
}
