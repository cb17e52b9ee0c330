package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	swaptypes "github.com/lockdex-labs/lockdex/x/swap/types"
)

// SwapKeeper is the slice of the swap module the router drives: deposits and
// withdrawals of its custody funds, and the lock lifecycle on each hop.
type SwapKeeper interface {
	GetPool(ctx context.Context, instance sdk.AccAddress) (swaptypes.PoolState, error)
	Deposit(ctx context.Context, instance, caller sdk.AccAddress, denom string, amount math.Int) error
	Withdraw(ctx context.Context, instance, caller sdk.AccAddress, denom string, amount math.Int) error
	AcquireSwapLock(ctx context.Context, instance, caller sdk.AccAddress, denom string, amountIn, minimumOut math.Int) (uint64, error)
	GetLock(ctx context.Context, instance sdk.AccAddress, lockID uint64) (swaptypes.Lock, bool)
	ExecuteLockSwap(ctx context.Context, instance, caller sdk.AccAddress, lockID uint64) (math.Int, error)
	CancelLock(ctx context.Context, instance, caller sdk.AccAddress, lockID uint64) error
}

// TokenKeeper is the token ledger the router takes custody through.
type TokenKeeper interface {
	Transfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error
	TransferFrom(ctx context.Context, denom string, spender, owner, to sdk.AccAddress, amount math.Int) error
	Approve(ctx context.Context, denom string, owner, spender sdk.AccAddress, amount math.Int) error
	GetBalance(ctx context.Context, denom string, holder sdk.AccAddress) math.Int
}
