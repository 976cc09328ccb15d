package chain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	baseabi "github.com/x-xyz/ensmetadata/base/abi"
	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	bEthereum "github.com/x-xyz/ensmetadata/base/ethereum"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/service/chain/chaintest"
)

const registrar = "0x57f1887a8BF19b14fC0dF6Fd9B2acc9Af147eA85"

func TestClient_Call(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	owner := common.HexToAddress("0xD4416b13d2b3a9aBae7AcD5D6C2BbDBE25686401")

	caller := chaintest.NewCaller(baseabi.BaseRegistrarABI).
		Return(registrar, "ownerOf", owner)
	c := NewClientWithCallers(map[int32]bEthereum.Caller{1: caller})

	res, err := c.Call(ctx, 1, common.HexToAddress(registrar), baseabi.BaseRegistrarABI, "ownerOf", common.Big1)
	req.NoError(err)
	req.Equal(owner, res[0].(common.Address))
	req.Equal(1, caller.Calls(registrar, "ownerOf"))
	req.True(c.Supports(1))
	req.False(c.Supports(5))
}

func TestClient_CallErrors(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	caller := chaintest.NewCaller(baseabi.BaseRegistrarABI).Revert(registrar, "ownerOf")
	c := NewClientWithCallers(map[int32]bEthereum.Caller{1: caller})

	_, err := c.Call(ctx, 5, common.HexToAddress(registrar), baseabi.BaseRegistrarABI, "ownerOf", common.Big1)
	req.True(domain.IsKind(err, domain.KindUnsupportedNetwork))

	_, err = c.Call(ctx, 1, common.HexToAddress(registrar), baseabi.BaseRegistrarABI, "ownerOf", common.Big1)
	req.ErrorIs(err, chaintest.ErrExecutionReverted)

	_, err = c.Call(ctx, 1, common.HexToAddress(registrar), baseabi.BaseRegistrarABI, "ownerOf", "not a number")
	req.Error(err)

	n, err := c.BlockNumber(ctx, 1)
	req.NoError(err)
	req.Equal(uint64(1), n)
}
