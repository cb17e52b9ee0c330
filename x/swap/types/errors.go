package types

import (
	"cosmossdk.io/errors"
)

// Swap module sentinel errors
var (
	ErrConfiguration       = errors.Register(ModuleName, 1, "invalid swap instance configuration")
	ErrInstanceNotFound    = errors.Register(ModuleName, 2, "swap instance not found")
	ErrInstanceExists      = errors.Register(ModuleName, 3, "swap instance already exists")
	ErrUnknownToken        = errors.Register(ModuleName, 4, "token not traded by this instance")
	ErrInvalidAmount       = errors.Register(ModuleName, 5, "invalid amount")
	ErrInsufficientBalance = errors.Register(ModuleName, 6, "insufficient deposit balance")
	ErrNoLiquidity         = errors.Register(ModuleName, 7, "no liquidity in pool")
	ErrZeroLiquidityMinted = errors.Register(ModuleName, 8, "liquidity mint would be zero")
	ErrLocksPresent        = errors.Register(ModuleName, 9, "locks outstanding")
	ErrSlippageExceeded    = errors.Register(ModuleName, 10, "output below requested minimum")
	ErrUnknownLock         = errors.Register(ModuleName, 11, "unknown lock")
	ErrPermissionDenied    = errors.Register(ModuleName, 12, "caller does not own lock")
	ErrInsufficientDeposit = errors.Register(ModuleName, 13, "deposit too small to execute lock")
	ErrLiquidityPresent    = errors.Register(ModuleName, 14, "pool already has liquidity")
	ErrTooManyLocks        = errors.Register(ModuleName, 15, "account holds too many outstanding locks")
)
