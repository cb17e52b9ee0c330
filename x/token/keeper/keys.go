package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

var (
	// TokenKeyPrefix is the prefix for token registration records
	TokenKeyPrefix = []byte{0x01}

	// BalanceKeyPrefix is the prefix for per-holder balances
	BalanceKeyPrefix = []byte{0x02}

	// AllowanceKeyPrefix is the prefix for (owner, spender) allowances
	AllowanceKeyPrefix = []byte{0x03}
)

// TokenKey returns the store key for a token registration record
func TokenKey(denom string) []byte {
	return append(TokenKeyPrefix, []byte(denom)...)
}

// BalanceKey returns the store key for one holder's balance of a token
func BalanceKey(denom string, holder sdk.AccAddress) []byte {
	key := append(BalanceKeyPrefix, []byte(denom)...)
	key = append(key, []byte("/")...)
	return append(key, address.MustLengthPrefix(holder)...)
}

// BalanceDenomPrefix returns the iteration prefix over all balances of a token
func BalanceDenomPrefix(denom string) []byte {
	key := append(BalanceKeyPrefix, []byte(denom)...)
	return append(key, []byte("/")...)
}

// AllowanceKey returns the store key for a spender's allowance on an owner's balance
func AllowanceKey(denom string, owner, spender sdk.AccAddress) []byte {
	key := append(AllowanceKeyPrefix, []byte(denom)...)
	key = append(key, []byte("/")...)
	key = append(key, address.MustLengthPrefix(owner)...)
	return append(key, address.MustLengthPrefix(spender)...)
}
