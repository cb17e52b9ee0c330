package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "token"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Token is the registration record for one fungible token ledger.
type Token struct {
	Denom       string   `json:"denom"`
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Decimals    uint8    `json:"decimals"`
	TotalSupply math.Int `json:"total_supply"`
}

// Validate checks the registration record for deploy-time configuration errors.
func (t Token) Validate() error {
	if t.Denom == "" {
		return ErrInvalidDenom.Wrap("denom cannot be empty")
	}
	if t.TotalSupply.IsNil() || t.TotalSupply.IsNegative() {
		return ErrInvalidAmount.Wrap("total supply must be non-negative")
	}
	return nil
}
