package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/x-xyz/ensmetadata/base/log"
)

// Caller is the read-only part of ethclient used to talk to contracts.
type Caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// ThrottledClient bounds the number of in-flight rpc calls to one node.
type ThrottledClient struct {
	client Caller
	tokens chan int
}

func NewTrottledClient(client *ethclient.Client, n int) *ThrottledClient {
	return NewThrottledCaller(client, n)
}

func NewThrottledCaller(client Caller, n int) *ThrottledClient {
	if n <= 0 {
		n = 1
	}
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &ThrottledClient{
		client: client,
		tokens: tokens,
	}
}

func (c *ThrottledClient) BlockNumber(ctx context.Context) (uint64, error) {
	token, err := c.before(ctx)
	if err != nil {
		return 0, err
	}
	defer c.after(token)
	return c.client.BlockNumber(ctx)
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	token, err := c.before(ctx)
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.client.CallContract(ctx, msg, number)
}

func (c *ThrottledClient) before(ctx context.Context) (int, error) {
	now := time.Now()
	select {
	case <-ctx.Done():
		log.Log().WithField("waited", time.Since(now).String()).Debug("throttle ctx done")
		return 0, ctx.Err()
	case token := <-c.tokens:
		if waited := time.Since(now); waited > 100*time.Millisecond {
			log.Log().WithFields(log.Fields{
				"token":  token,
				"idle":   len(c.tokens),
				"waited": waited.String(),
			}).Debug("throttled rpc call")
		}
		return token, nil
	}
}

func (c *ThrottledClient) after(token int) {
	if token != 0 {
		c.tokens <- token
	}
}
