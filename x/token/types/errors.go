package types

import (
	"cosmossdk.io/errors"
)

// Token module sentinel errors
var (
	ErrTokenExists           = errors.Register(ModuleName, 1, "token already exists")
	ErrTokenNotFound         = errors.Register(ModuleName, 2, "token not found")
	ErrInvalidDenom          = errors.Register(ModuleName, 3, "invalid token denomination")
	ErrInvalidAmount         = errors.Register(ModuleName, 4, "invalid amount")
	ErrInsufficientFunds     = errors.Register(ModuleName, 5, "insufficient funds")
	ErrInsufficientAllowance = errors.Register(ModuleName, 6, "insufficient allowance")
)
