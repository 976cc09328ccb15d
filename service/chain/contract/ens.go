package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/ensmetadata/base/abi"
	bCtx "github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
	"github.com/x-xyz/ensmetadata/service/chain"
)

// DefaultNameWrapperInterfaceId is the ERC-165 id of INameWrapper.
const DefaultNameWrapperInterfaceId = "d82c42d8"

type RegistrarContract interface {
	OwnerOf(ctx bCtx.Ctx, chainId int32, addr string, labelhash *big.Int) (domain.Address, error)
}

type NameWrapperContract interface {
	// SupportsNameWrapper probes addr for the INameWrapper interface.
	SupportsNameWrapper(ctx bCtx.Ctx, chainId int32, addr string) (bool, error)
	IsWrapped(ctx bCtx.Ctx, chainId int32, addr string, node [32]byte) (bool, error)
	OwnerOf(ctx bCtx.Ctx, chainId int32, addr string, id *big.Int) (domain.Address, error)
}

type RegistryContract interface {
	Owner(ctx bCtx.Ctx, chainId int32, registry string, node [32]byte) (domain.Address, error)
	Resolver(ctx bCtx.Ctx, chainId int32, registry string, node [32]byte) (domain.Address, error)
	Text(ctx bCtx.Ctx, chainId int32, resolver string, node [32]byte, key string) (string, error)
}

type Registrar struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewRegistrar(chainService chain.Client) *Registrar {
	return &Registrar{
		chainService: chainService,
		abi:          baseabi.BaseRegistrarABI,
	}
}

func (r *Registrar) OwnerOf(ctx bCtx.Ctx, chainId int32, addr string, labelhash *big.Int) (domain.Address, error) {
	unpacked, err := r.chainService.Call(ctx, chainId, common.HexToAddress(addr), r.abi, "ownerOf", labelhash)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).Hex()), nil
}

type NameWrapper struct {
	chainService chain.Client
	abi          ethabi.ABI
	interfaceId  [4]byte
}

// NewNameWrapper uses interfaceId as the INameWrapper id, the default id
// when empty.
func NewNameWrapper(chainService chain.Client, interfaceId string) *NameWrapper {
	if interfaceId == "" {
		interfaceId = DefaultNameWrapperInterfaceId
	}
	var id [4]byte
	copy(id[:], common.FromHex(interfaceId))
	return &NameWrapper{
		chainService: chainService,
		abi:          baseabi.NameWrapperABI,
		interfaceId:  id,
	}
}

func (w *NameWrapper) SupportsNameWrapper(ctx bCtx.Ctx, chainId int32, addr string) (bool, error) {
	unpacked, err := w.chainService.Call(ctx, chainId, common.HexToAddress(addr), w.abi, "supportsInterface", w.interfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (w *NameWrapper) IsWrapped(ctx bCtx.Ctx, chainId int32, addr string, node [32]byte) (bool, error) {
	unpacked, err := w.chainService.Call(ctx, chainId, common.HexToAddress(addr), w.abi, "isWrapped", node)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (w *NameWrapper) OwnerOf(ctx bCtx.Ctx, chainId int32, addr string, id *big.Int) (domain.Address, error) {
	unpacked, err := w.chainService.Call(ctx, chainId, common.HexToAddress(addr), w.abi, "ownerOf", id)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).Hex()), nil
}

type Registry struct {
	chainService chain.Client
	registryAbi  ethabi.ABI
	resolverAbi  ethabi.ABI
}

func NewRegistry(chainService chain.Client) *Registry {
	return &Registry{
		chainService: chainService,
		registryAbi:  baseabi.ENSRegistryABI,
		resolverAbi:  baseabi.PublicResolverABI,
	}
}

func (r *Registry) Owner(ctx bCtx.Ctx, chainId int32, registry string, node [32]byte) (domain.Address, error) {
	unpacked, err := r.chainService.Call(ctx, chainId, common.HexToAddress(registry), r.registryAbi, "owner", node)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).Hex()), nil
}

func (r *Registry) Resolver(ctx bCtx.Ctx, chainId int32, registry string, node [32]byte) (domain.Address, error) {
	unpacked, err := r.chainService.Call(ctx, chainId, common.HexToAddress(registry), r.registryAbi, "resolver", node)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).Hex()), nil
}

func (r *Registry) Text(ctx bCtx.Ctx, chainId int32, resolver string, node [32]byte, key string) (string, error) {
	unpacked, err := r.chainService.Call(ctx, chainId, common.HexToAddress(resolver), r.resolverAbi, "text", node, key)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}
