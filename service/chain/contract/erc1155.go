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

type Erc1155Contract interface {
	Supports1155Interface(ctx bCtx.Ctx, chainId int32, addr string) (bool, error)
	Uri(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int) (string, error)
	BalanceOf(ctx bCtx.Ctx, chainId int32, addr string, owner domain.Address, tokenId *big.Int) (*big.Int, error)
}

type Erc1155 struct {
	chainService       chain.Client
	abi                ethabi.ABI
	erc1155InterfaceId [4]byte
}

func NewErc1155(chainService chain.Client) *Erc1155 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("d9b67a26"))
	return &Erc1155{
		abi:                baseabi.ERC1155TokenABI,
		chainService:       chainService,
		erc1155InterfaceId: interfaceId,
	}
}

func (e *Erc1155) Supports1155Interface(ctx bCtx.Ctx, chainId int32, addr string) (bool, error) {
	method := "supportsInterface"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), e.abi, method, e.erc1155InterfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc1155) Uri(ctx bCtx.Ctx, chainId int32, addr string, tokenId *big.Int) (string, error) {
	method := "uri"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), e.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *Erc1155) BalanceOf(ctx bCtx.Ctx, chainId int32, addr string, owner domain.Address, tokenId *big.Int) (*big.Int, error) {
	method := "balanceOf"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(addr), e.abi, method, common.HexToAddress(string(owner)), tokenId)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}
