package contract

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	baseabi "github.com/x-xyz/ensmetadata/base/abi"
	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	bEthereum "github.com/x-xyz/ensmetadata/base/ethereum"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/service/chain"
	"github.com/x-xyz/ensmetadata/service/chain/chaintest"
)

const (
	registrarAddr   = "0x57f1887a8BF19b14fC0dF6Fd9B2acc9Af147eA85"
	nameWrapperAddr = "0xD4416b13d2b3a9aBae7AcD5D6C2BbDBE25686401"
	registryAddr    = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"
	resolverAddr    = "0x4976fb03C32e5B8cfe2b6cCB31c09Ba78EBaBa41"
	nftAddr         = "0x495f947276749Ce646f68AC8c248420045cb7b5e"
	ownerAddr       = "0x983110309620D911731Ac0932219af06091b6744"
)

func newClient(caller *chaintest.Caller) chain.Client {
	return chain.NewClientWithCallers(map[int32]bEthereum.Caller{1: caller})
}

func TestRegistrar_OwnerOf(t *testing.T) {
	req := require.New(t)
	caller := chaintest.NewCaller(baseabi.BaseRegistrarABI).
		Return(registrarAddr, "ownerOf", common.HexToAddress(ownerAddr))
	r := NewRegistrar(newClient(caller))

	owner, err := r.OwnerOf(bCtx.Background(), 1, registrarAddr, big.NewInt(42))
	req.NoError(err)
	req.True(owner.Equals(domain.Address(ownerAddr)))
}

func TestNameWrapper(t *testing.T) {
	req := require.New(t)
	var node [32]byte
	node[31] = 1

	caller := chaintest.NewCaller(baseabi.NameWrapperABI).
		On(nameWrapperAddr, "supportsInterface", func(args []interface{}) ([]interface{}, error) {
			id := args[0].([4]byte)
			return []interface{}{common.Bytes2Hex(id[:]) == DefaultNameWrapperInterfaceId}, nil
		}).
		On(nameWrapperAddr, "isWrapped", func(args []interface{}) ([]interface{}, error) {
			return []interface{}{args[0].([32]byte) == node}, nil
		}).
		Return(nameWrapperAddr, "ownerOf", common.HexToAddress(ownerAddr))
	w := NewNameWrapper(newClient(caller), "")
	ctx := bCtx.Background()

	ok, err := w.SupportsNameWrapper(ctx, 1, nameWrapperAddr)
	req.NoError(err)
	req.True(ok)

	other := NewNameWrapper(newClient(caller), "0x01ffc9a7")
	ok, err = other.SupportsNameWrapper(ctx, 1, nameWrapperAddr)
	req.NoError(err)
	req.False(ok)

	wrapped, err := w.IsWrapped(ctx, 1, nameWrapperAddr, node)
	req.NoError(err)
	req.True(wrapped)

	wrapped, err = w.IsWrapped(ctx, 1, nameWrapperAddr, [32]byte{})
	req.NoError(err)
	req.False(wrapped)

	owner, err := w.OwnerOf(ctx, 1, nameWrapperAddr, big.NewInt(1))
	req.NoError(err)
	req.True(owner.Equals(domain.Address(ownerAddr)))
}

func TestRegistry(t *testing.T) {
	req := require.New(t)
	caller := chaintest.NewCaller(baseabi.ENSRegistryABI, baseabi.PublicResolverABI).
		Return(registryAddr, "resolver", common.HexToAddress(resolverAddr)).
		Return(registryAddr, "owner", common.HexToAddress(ownerAddr)).
		On(resolverAddr, "text", func(args []interface{}) ([]interface{}, error) {
			if args[1].(string) == "avatar" {
				return []interface{}{"ipfs://QmAvatar"}, nil
			}
			return []interface{}{""}, nil
		})
	r := NewRegistry(newClient(caller))
	ctx := bCtx.Background()

	resolver, err := r.Resolver(ctx, 1, registryAddr, [32]byte{})
	req.NoError(err)
	req.True(resolver.Equals(domain.Address(resolverAddr)))

	owner, err := r.Owner(ctx, 1, registryAddr, [32]byte{})
	req.NoError(err)
	req.True(owner.Equals(domain.Address(ownerAddr)))

	text, err := r.Text(ctx, 1, resolverAddr, [32]byte{}, "avatar")
	req.NoError(err)
	req.Equal("ipfs://QmAvatar", text)

	text, err = r.Text(ctx, 1, resolverAddr, [32]byte{}, "image")
	req.NoError(err)
	req.Empty(text)
}

func TestErc721(t *testing.T) {
	req := require.New(t)
	caller := chaintest.NewCaller(baseabi.ERC721TokenABI).
		Return(nftAddr, "supportsInterface", true).
		Return(nftAddr, "ownerOf", common.HexToAddress(ownerAddr)).
		Return(nftAddr, "tokenURI", "https://api.example.com/1")
	e := NewErc721(newClient(caller))
	ctx := bCtx.Background()

	ok, err := e.Supports721Interface(ctx, 1, nftAddr)
	req.NoError(err)
	req.True(ok)

	owner, err := e.OwnerOf(ctx, 1, nftAddr, big.NewInt(1))
	req.NoError(err)
	req.True(owner.Equals(domain.Address(ownerAddr)))

	uri, err := e.TokenURI(ctx, 1, nftAddr, big.NewInt(1))
	req.NoError(err)
	req.Equal("https://api.example.com/1", uri)

	_, err = e.TokenURI(ctx, 5, nftAddr, big.NewInt(1))
	req.True(domain.IsKind(err, domain.KindUnsupportedNetwork))
}

func TestErc1155(t *testing.T) {
	req := require.New(t)
	caller := chaintest.NewCaller(baseabi.ERC1155TokenABI).
		Return(nftAddr, "supportsInterface", true).
		Return(nftAddr, "uri", "https://api.example.com/{id}").
		On(nftAddr, "balanceOf", func(args []interface{}) ([]interface{}, error) {
			if args[0].(common.Address) == common.HexToAddress(ownerAddr) {
				return []interface{}{big.NewInt(3)}, nil
			}
			return []interface{}{big.NewInt(0)}, nil
		})
	e := NewErc1155(newClient(caller))
	ctx := bCtx.Background()

	ok, err := e.Supports1155Interface(ctx, 1, nftAddr)
	req.NoError(err)
	req.True(ok)

	uri, err := e.Uri(ctx, 1, nftAddr, big.NewInt(1))
	req.NoError(err)
	req.Equal("https://api.example.com/{id}", uri)

	bal, err := e.BalanceOf(ctx, 1, nftAddr, ownerAddr, big.NewInt(1))
	req.NoError(err)
	req.Equal(int64(3), bal.Int64())

	bal, err = e.BalanceOf(ctx, 1, nftAddr, registryAddr, big.NewInt(1))
	req.NoError(err)
	req.Zero(bal.Sign())
}
