package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

// RealizedLiquidity returns the constant-product value the pool would hold
// if every outstanding lock were executed right now. This value never
// decreases across any operation sequence; a swap fee makes it grow.
func (k Keeper) RealizedLiquidity(ctx context.Context, instance sdk.AccAddress) math.Int {
	reserves := k.Reserves(ctx, instance)
	a := reserves.ReserveA
	b := reserves.ReserveB
	for _, lock := range k.Locks(ctx, instance) {
		if lock.Direction == types.SideA {
			a = a.Add(lock.AmountIn)
			b = b.Sub(lock.AmountOut)
		} else {
			b = b.Add(lock.AmountIn)
			a = a.Sub(lock.AmountOut)
		}
	}
	return a.Mul(b)
}

// CheckLockSums recomputes the per-direction outstanding input sums from the
// lock arena and compares them with the stored bookkeeping.
func (k Keeper) CheckLockSums(ctx context.Context, instance sdk.AccAddress) error {
	vs, err := k.GetVirtualState(ctx, instance)
	if err != nil {
		return err
	}
	derived := types.LockSums{AIn: math.ZeroInt(), BIn: math.ZeroInt()}
	for _, lock := range k.Locks(ctx, instance) {
		derived = addOutstanding(derived, lock.Direction, lock.AmountIn)
	}
	if !derived.AIn.Equal(vs.OutstandingIn.AIn) || !derived.BIn.Equal(vs.OutstandingIn.BIn) {
		return types.ErrConfiguration.Wrapf(
			"lock sums diverged: stored a=%s b=%s, derived a=%s b=%s",
			vs.OutstandingIn.AIn, vs.OutstandingIn.BIn, derived.AIn, derived.BIn)
	}
	return nil
}
