package avatar

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/ensmetadata/domain"
)

type Kind int

const (
	KindURI Kind = iota
	KindNFT
)

type Namespace string

const (
	NamespaceErc721  Namespace = "erc721"
	NamespaceErc1155 Namespace = "erc1155"
)

const (
	eip155Prefix = "eip155:"
	didNftPrefix = "did:nft:"
)

// URIRef is a direct link to the image. Scheme is empty for bare paths and CIDs.
type URIRef struct {
	Scheme string
	Path   string
	Raw    string
}

type NFTRef struct {
	ChainId         domain.ChainId
	Namespace       Namespace
	ContractAddress domain.Address
	TokenId         *big.Int
}

// Reference is the parsed value of an avatar text record.
type Reference struct {
	Kind Kind
	URI  *URIRef
	NFT  *NFTRef
}

func parseErr(format string, args ...interface{}) error {
	return domain.Errorf(domain.KindURIParsingError, format, args...)
}

// Parse classifies an avatar record value. Values in the eip155 (or legacy
// did:nft) form must be complete NFT references, everything else is a URI.
func Parse(text string) (*Reference, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, parseErr("empty avatar record")
	}
	if strings.HasPrefix(strings.ToLower(s), didNftPrefix) {
		s = strings.ReplaceAll(s[len(didNftPrefix):], "_", "/")
	}
	if !strings.HasPrefix(strings.ToLower(s), eip155Prefix) {
		return &Reference{Kind: KindURI, URI: parseURI(s)}, nil
	}
	nft, err := parseNFT(s)
	if err != nil {
		return nil, err
	}
	return &Reference{Kind: KindNFT, NFT: nft}, nil
}

func parseURI(s string) *URIRef {
	ref := &URIRef{Raw: s, Path: s}
	if i := strings.Index(s, ":"); i > 0 {
		scheme := strings.ToLower(s[:i])
		if isScheme(scheme) {
			ref.Scheme = scheme
			ref.Path = strings.TrimPrefix(s[i+1:], "//")
		}
	}
	return ref
}

func isScheme(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// eip155:<chainId>/<namespace>:<contract>/<tokenId>
func parseNFT(s string) (*NFTRef, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return nil, parseErr("malformed nft reference %q", s)
	}

	chainId, err := strconv.ParseInt(parts[0][len(eip155Prefix):], 10, 32)
	if err != nil || chainId <= 0 {
		return nil, parseErr("invalid chain id in %q", s)
	}

	asset := strings.SplitN(parts[1], ":", 2)
	if len(asset) != 2 {
		return nil, parseErr("missing asset namespace in %q", s)
	}
	ns := Namespace(strings.ToLower(asset[0]))
	if ns != NamespaceErc721 && ns != NamespaceErc1155 {
		return nil, domain.Errorf(domain.KindUnsupportedNamespace, "unsupported namespace: %s", asset[0])
	}
	if !common.IsHexAddress(asset[1]) || !strings.HasPrefix(asset[1], "0x") {
		return nil, parseErr("invalid contract address %q", asset[1])
	}

	tokenId, ok := new(big.Int).SetString(parts[2], 10)
	if !ok || tokenId.Sign() < 0 {
		return nil, parseErr("invalid token id %q", parts[2])
	}

	return &NFTRef{
		ChainId:         domain.ChainId(chainId),
		Namespace:       ns,
		ContractAddress: domain.Address(asset[1]),
		TokenId:         tokenId,
	}, nil
}
