package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	// BaseRegistrarABI covers the read methods of the legacy .eth registrar
	BaseRegistrarABI  abi.ABI
	NameWrapperABI    abi.ABI
	ENSRegistryABI    abi.ABI
	PublicResolverABI abi.ABI
)

var baseRegistrarABIJson = `[
  {"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"nameExpires","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"supportsInterface","stateMutability":"view","inputs":[{"name":"interfaceID","type":"bytes4"}],"outputs":[{"name":"","type":"bool"}]}
]`

var nameWrapperABIJson = `[
  {"type":"function","name":"isWrapped","stateMutability":"view","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"owner","type":"address"}]},
  {"type":"function","name":"getData","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"owner","type":"address"},{"name":"fuses","type":"uint32"},{"name":"expiry","type":"uint64"}]},
  {"type":"function","name":"supportsInterface","stateMutability":"view","inputs":[{"name":"interfaceId","type":"bytes4"}],"outputs":[{"name":"","type":"bool"}]}
]`

var ensRegistryABIJson = `[
  {"type":"function","name":"owner","stateMutability":"view","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"resolver","stateMutability":"view","inputs":[{"name":"node","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]}
]`

var publicResolverABIJson = `[
  {"type":"function","name":"text","stateMutability":"view","inputs":[{"name":"node","type":"bytes32"},{"name":"key","type":"string"}],"outputs":[{"name":"","type":"string"}]}
]`

func mustParse(name, data string) abi.ABI {
	_abi, err := abi.JSON(strings.NewReader(data))
	if err != nil {
		panic("Failed to parse " + name + " abi")
	}
	return _abi
}

func init() {
	BaseRegistrarABI = mustParse("base registrar", baseRegistrarABIJson)
	NameWrapperABI = mustParse("name wrapper", nameWrapperABIJson)
	ENSRegistryABI = mustParse("ens registry", ensRegistryABIJson)
	PublicResolverABI = mustParse("public resolver", publicResolverABIJson)
}
