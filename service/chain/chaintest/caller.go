// Package chaintest provides an in-memory contract backend for tests.
package chaintest

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

var ErrExecutionReverted = errors.New("execution reverted")

// Handler answers one contract method given its decoded inputs.
type Handler func(args []interface{}) ([]interface{}, error)

// Caller decodes calls with the registered ABIs and dispatches them by
// contract address and method name. Unhandled calls revert.
type Caller struct {
	mu       sync.Mutex
	abis     []abi.ABI
	handlers map[string]Handler
	calls    map[string]int
}

func NewCaller(abis ...abi.ABI) *Caller {
	return &Caller{
		abis:     abis,
		handlers: map[string]Handler{},
		calls:    map[string]int{},
	}
}

func key(addr, method string) string {
	return strings.ToLower(addr) + "/" + method
}

func (c *Caller) On(addr, method string, h Handler) *Caller {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[key(addr, method)] = h
	return c
}

func (c *Caller) Return(addr, method string, outs ...interface{}) *Caller {
	return c.On(addr, method, func([]interface{}) ([]interface{}, error) {
		return outs, nil
	})
}

func (c *Caller) Revert(addr, method string) *Caller {
	return c.On(addr, method, func([]interface{}) ([]interface{}, error) {
		return nil, ErrExecutionReverted
	})
}

// Calls returns how many times method was called on addr.
func (c *Caller) Calls(addr, method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[key(addr, method)]
}

func (c *Caller) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	if msg.To == nil || len(msg.Data) < 4 {
		return nil, ErrExecutionReverted
	}
	for _, a := range c.abis {
		m, err := a.MethodById(msg.Data[:4])
		if err != nil {
			continue
		}
		args, err := m.Inputs.Unpack(msg.Data[4:])
		if err != nil {
			return nil, err
		}
		k := key(msg.To.Hex(), m.Name)
		c.mu.Lock()
		h, ok := c.handlers[k]
		c.calls[k]++
		c.mu.Unlock()
		if !ok {
			return nil, ErrExecutionReverted
		}
		outs, err := h(args)
		if err != nil {
			return nil, err
		}
		return m.Outputs.Pack(outs...)
	}
	return nil, fmt.Errorf("%w: unknown selector %x", ErrExecutionReverted, msg.Data[:4])
}

func (c *Caller) BlockNumber(ctx context.Context) (uint64, error) {
	return 1, nil
}
