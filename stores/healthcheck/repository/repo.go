package repository

import (
	"time"

	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/domain"
	hcdomain "github.com/x-xyz/ensmetadata/domain/healthcheck"
	"github.com/x-xyz/ensmetadata/service/chain"
	"golang.org/x/xerrors"
)

const pingTimeout = 2 * time.Second

type impl struct {
	chainClient chain.Client
	indexer     domain.IndexerRepository
}

// New creates new HealthCheckRepo backed by the rpc nodes and the subgraph
func New(
	chainClient chain.Client,
	indexer domain.IndexerRepository,
) hcdomain.HealthCheckRepo {
	return &impl{
		chainClient: chainClient,
		indexer:     indexer,
	}
}

func (im *impl) PingRpc(context ctx.Ctx, network domain.NetworkCfg) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if _, err := im.chainClient.BlockNumber(ctx, int32(network.ChainId)); err != nil {
		context.WithFields(log.Fields{
			"network": network.Name,
			"err":     err,
		}).Error("ping rpc error")
		return xerrors.Errorf("%s rpc: %w", network.Name, err)
	}
	return nil
}

func (im *impl) PingIndexer(context ctx.Ctx, network domain.NetworkCfg) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.indexer.Ping(ctx, network.SubgraphUrl); err != nil {
		context.WithFields(log.Fields{
			"network": network.Name,
			"err":     err,
		}).Error("ping indexer error")
		return xerrors.Errorf("%s indexer: %w", network.Name, err)
	}
	return nil
}
