package validator

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// IsValidTokenId accepts decimal ids and 0x-prefixed hashes up to 32 bytes.
func IsValidTokenId(id string) bool {
	if strings.HasPrefix(id, "0x") {
		return len(id) > 2 && len(id) <= 66 && strings.Trim(id[2:], hexDigits) == ""
	}
	if id == "" || strings.Trim(id, decimalDigits) != "" {
		return false
	}
	n, ok := new(big.Int).SetString(id, 10)
	return ok && n.BitLen() <= 256
}

const (
	decimalDigits = "0123456789"
	hexDigits     = decimalDigits + "abcdefABCDEF"
)

// NewCustomValidator registers the `network`, `address` and `tokenid` tags.
func NewCustomValidator(v *validator.Validate, networks []string) echo.Validator {
	known := make(map[string]bool, len(networks))
	for _, n := range networks {
		known[strings.ToLower(n)] = true
	}
	_ = v.RegisterValidation("network", func(fl validator.FieldLevel) bool {
		return known[strings.ToLower(fl.Field().String())]
	})
	_ = v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("tokenid", func(fl validator.FieldLevel) bool {
		return IsValidTokenId(fl.Field().String())
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
