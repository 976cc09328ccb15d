package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is a decimal token id as returned by contracts and NFT references.
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// ToHexString returns the id as 64 lowercase hex digits without prefix.
func (i TokenId) ToHexString() (string, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return "", xerrors.Errorf("invalid id %s", i)
	}
	return fmt.Sprintf("%064x", id), nil
}

// Identifier is what a caller addresses a name with: a decimal token id, a
// 0x-prefixed hash or a plain label/name.
type Identifier struct {
	raw string
	num *big.Int
}

func ParseIdentifier(s string) Identifier {
	s = strings.TrimSpace(s)
	id := Identifier{raw: s}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if len(s) <= 66 && onlyDigits(s[2:], true) {
			id.num, _ = new(big.Int).SetString(s[2:], 16)
		}
		return id
	}
	if onlyDigits(s, false) {
		id.num, _ = new(big.Int).SetString(s, 10)
	}
	return id
}

// onlyDigits rejects the signs big.Int parsing would accept.
func onlyDigits(s string, hex bool) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case hex && (c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'):
		default:
			return false
		}
	}
	return true
}

func IdentifierFromInt(n *big.Int) Identifier {
	return Identifier{raw: n.String(), num: new(big.Int).Set(n)}
}

func (i Identifier) String() string {
	return i.raw
}

// IsNumeric reports whether the identifier is already a token id.
func (i Identifier) IsNumeric() bool {
	return i.num != nil
}

func (i Identifier) Int() *big.Int {
	if i.num == nil {
		return nil
	}
	return new(big.Int).Set(i.num)
}

// Hex returns 0x followed by the 32-byte big-endian id, empty for labels.
func (i Identifier) Hex() string {
	if i.num == nil {
		return ""
	}
	return fmt.Sprintf("0x%064x", i.num)
}

func (i Identifier) Decimal() string {
	if i.num == nil {
		return ""
	}
	return i.num.String()
}
