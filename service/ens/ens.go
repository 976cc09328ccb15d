package ens

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/x-xyz/ensmetadata/base/ctx"
	"github.com/x-xyz/ensmetadata/domain"
)

// ENS reads name records through the registry of a network.
type ENS interface {
	// Resolver returns the resolver of name, ResolverNotFound when unset.
	Resolver(ctx ctx.Ctx, network domain.NetworkCfg, name string) (domain.Address, error)
	// Text returns the text record key of name, TextRecordNotFound when empty.
	Text(ctx ctx.Ctx, network domain.NetworkCfg, name string, key string) (string, error)
	Owner(ctx ctx.Ctx, network domain.NetworkCfg, name string) (domain.Address, error)
}

// LabelHash is keccak256 of the label. A label of the form [<64 hex>] is an
// already hashed label and is decoded as is.
func LabelHash(label string) [32]byte {
	var h [32]byte
	if encoded, ok := decodeEncodedLabel(label); ok {
		copy(h[:], encoded)
		return h
	}
	copy(h[:], crypto.Keccak256([]byte(label)))
	return h
}

// NameHash computes the EIP-137 node of name without normalising it.
func NameHash(name string) [32]byte {
	var node [32]byte
	if name == "" {
		return node
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		label := LabelHash(labels[i])
		copy(node[:], crypto.Keccak256(node[:], label[:]))
	}
	return node
}

func LabelHashHex(label string) string {
	h := LabelHash(label)
	return "0x" + hex.EncodeToString(h[:])
}

func NameHashHex(name string) string {
	h := NameHash(name)
	return "0x" + hex.EncodeToString(h[:])
}

// Normalize returns the UTS-46 normalised form of name.
func Normalize(name string) (string, error) {
	return goens.NormaliseDomain(name)
}

// IsNormalized reports whether name is already in normalised form.
func IsNormalized(name string) bool {
	normalized, err := Normalize(name)
	return err == nil && normalized == name
}

func decodeEncodedLabel(label string) ([]byte, bool) {
	if len(label) != 66 || label[0] != '[' || label[65] != ']' {
		return nil, false
	}
	b, err := hex.DecodeString(label[1:65])
	if err != nil {
		return nil, false
	}
	return b, true
}
