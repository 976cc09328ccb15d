package chain

import (
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	bEthereum "github.com/x-xyz/ensmetadata/base/ethereum"
	"github.com/x-xyz/ensmetadata/base/log"
	"github.com/x-xyz/ensmetadata/domain"
)

var ErrUnsupportedChain = domain.NewError(domain.KindUnsupportedNetwork, "unsupported chain")

type ClientCfg struct {
	RpcUrls map[int32]string
	// MaxConcurrency bounds in-flight calls per rpc node
	MaxConcurrency int
}

type Client interface {
	Call(bCtx.Ctx, int32, common.Address, abi.ABI, string, ...interface{}) ([]interface{}, error)
	BlockNumber(bCtx.Ctx, int32) (uint64, error)
	Supports(chainId int32) bool
}

type clientImpl struct {
	clients map[int32]bEthereum.Caller
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[int32]bEthereum.Caller)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = bEthereum.NewTrottledClient(client, cfg.MaxConcurrency)
	}
	return &clientImpl{
		clients: clients,
	}, anyerr
}

// NewClientWithCallers builds a client on top of already connected callers.
func NewClientWithCallers(callers map[int32]bEthereum.Caller) Client {
	return &clientImpl{clients: callers}
}

func (c *clientImpl) Supports(chainId int32) bool {
	_, ok := c.clients[chainId]
	return ok
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"to":     addr.Hex(),
			"err":    err,
		}).Warn("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"to":     addr.Hex(),
			"err":    err,
		}).Warn("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx, chainId int32) (uint64, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return 0, ErrUnsupportedChain
	}
	return client.BlockNumber(ctx)
}
