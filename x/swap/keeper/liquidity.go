package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

// ProvideInitialLiquidity funds an empty instance from the caller's deposit
// balance and mints the first liquidity shares, one share per token of the
// pair's first side. The virtual pools start out equal to the actual
// reserves.
func (k Keeper) ProvideInitialLiquidity(ctx context.Context, instance, caller sdk.AccAddress, amountA, amountB math.Int) (math.Int, error) {
	if _, err := k.GetPool(ctx, instance); err != nil {
		return math.Int{}, err
	}
	if amountA.IsNegative() || !amountB.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("initial liquidity %s / %s", amountA, amountB)
	}
	if amountA.IsZero() {
		return math.Int{}, types.ErrZeroLiquidityMinted.Wrap("initial provision mints one share per unit of the first side")
	}

	actual := k.Reserves(ctx, instance)
	if actual.ReserveA.IsPositive() || actual.ReserveB.IsPositive() {
		return math.Int{}, types.ErrLiquidityPresent.Wrapf("instance %s", instance)
	}

	shares := amountA
	if err := k.moveSide(ctx, instance, caller, instance, types.SideA, amountA); err != nil {
		return math.Int{}, err
	}
	if err := k.moveSide(ctx, instance, caller, instance, types.SideB, amountB); err != nil {
		return math.Int{}, err
	}
	if err := k.mintShares(ctx, instance, caller, shares); err != nil {
		return math.Int{}, err
	}

	reserves := k.Reserves(ctx, instance)
	vs, err := k.GetVirtualState(ctx, instance)
	if err != nil {
		return math.Int{}, err
	}
	vs.VirtualAtoB = reserves
	vs.VirtualBtoA = reserves
	if err := k.setVirtualState(ctx, instance, vs); err != nil {
		return math.Int{}, err
	}

	k.emitLiquidityEvent(ctx, types.EventTypeLiquidityMinted, instance, caller, shares)
	return shares, nil
}

// ProvideLiquidity adds liquidity to a funded instance from the caller's
// deposit balance. The caller names one side's contribution; the other
// side's is the smallest equivalent amount that does not dilute existing
// holders. Both virtual pools grow by the same reserve deltas, since added
// depth is real for every quoting direction.
func (k Keeper) ProvideLiquidity(ctx context.Context, instance, caller sdk.AccAddress, denom string, amount math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, instance)
	if err != nil {
		return math.Int{}, err
	}
	side, err := pool.SideOf(denom)
	if err != nil {
		return math.Int{}, err
	}
	if !amount.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("liquidity amount %s", amount)
	}

	actual := k.Reserves(ctx, instance)
	if !actual.ReserveA.IsPositive() || !actual.ReserveB.IsPositive() {
		return math.Int{}, types.ErrNoLiquidity.Wrapf("instance %s has no reserves", instance)
	}
	total := k.GetDepositBalance(ctx, instance, instance).Liquidity

	other := side.Opposite()
	reserveIn := actual.Reserve(side)
	reserveOther := actual.Reserve(other)

	// Round the matching contribution up and the minted shares down, so
	// providers can never extract value by cycling in and out.
	equivalent := amount.Mul(reserveOther).Quo(reserveIn).Add(math.OneInt())
	minted := amount.Mul(total).Quo(reserveIn)
	if minted.IsZero() {
		return math.Int{}, types.ErrZeroLiquidityMinted.Wrapf("amount %s too small", amount)
	}

	if err := k.moveSide(ctx, instance, caller, instance, side, amount); err != nil {
		return math.Int{}, err
	}
	if err := k.moveSide(ctx, instance, caller, instance, other, equivalent); err != nil {
		return math.Int{}, err
	}
	if err := k.mintShares(ctx, instance, caller, minted); err != nil {
		return math.Int{}, err
	}

	deltaA, deltaB := amount, equivalent
	if side == types.SideB {
		deltaA, deltaB = equivalent, amount
	}
	vs, err := k.GetVirtualState(ctx, instance)
	if err != nil {
		return math.Int{}, err
	}
	vs.VirtualAtoB = vs.VirtualAtoB.AddBoth(deltaA, deltaB)
	vs.VirtualBtoA = vs.VirtualBtoA.AddBoth(deltaA, deltaB)
	if err := k.setVirtualState(ctx, instance, vs); err != nil {
		return math.Int{}, err
	}

	k.emitLiquidityEvent(ctx, types.EventTypeLiquidityMinted, instance, caller, minted)
	return minted, nil
}

// ReclaimLiquidity burns the caller's shares for their proportional cut of
// both reserves, credited to the caller's deposit balance. Reclaiming is
// refused while any lock is outstanding, since honoring the lock may need
// the very reserves being withdrawn. With no locks left the virtual pools
// carry no information, so they reset to the actual reserves.
func (k Keeper) ReclaimLiquidity(ctx context.Context, instance, caller sdk.AccAddress, shares math.Int) (math.Int, math.Int, error) {
	if _, err := k.GetPool(ctx, instance); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !shares.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrapf("shares %s", shares)
	}
	if k.HasLocks(ctx, instance) {
		return math.Int{}, math.Int{}, types.ErrLocksPresent.Wrapf("instance %s", instance)
	}

	poolBal := k.GetDepositBalance(ctx, instance, instance)
	total := poolBal.Liquidity
	if !total.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrNoLiquidity.Wrapf("instance %s", instance)
	}
	callerBal := k.GetDepositBalance(ctx, instance, caller)
	if callerBal.Liquidity.LT(shares) {
		return math.Int{}, math.Int{}, types.ErrInsufficientBalance.Wrapf(
			"account %s holds %s shares, burning %s", caller, callerBal.Liquidity, shares)
	}

	amountA := poolBal.A.Mul(shares).Quo(total)
	amountB := poolBal.B.Mul(shares).Quo(total)

	if err := k.burnShares(ctx, instance, caller, shares); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amountA.IsPositive() {
		if err := k.moveSide(ctx, instance, instance, caller, types.SideA, amountA); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}
	if amountB.IsPositive() {
		if err := k.moveSide(ctx, instance, instance, caller, types.SideB, amountB); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	reserves := k.Reserves(ctx, instance)
	vs, err := k.GetVirtualState(ctx, instance)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	vs.VirtualAtoB = reserves
	vs.VirtualBtoA = reserves
	if err := k.setVirtualState(ctx, instance, vs); err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.emitLiquidityEvent(ctx, types.EventTypeLiquidityBurned, instance, caller, shares)
	return amountA, amountB, nil
}

func (k Keeper) mintShares(ctx context.Context, instance, caller sdk.AccAddress, shares math.Int) error {
	poolBal := k.GetDepositBalance(ctx, instance, instance)
	poolBal.Liquidity = poolBal.Liquidity.Add(shares)
	if err := k.setDepositBalance(ctx, instance, instance, poolBal); err != nil {
		return err
	}
	callerBal := k.GetDepositBalance(ctx, instance, caller)
	callerBal.Liquidity = callerBal.Liquidity.Add(shares)
	return k.setDepositBalance(ctx, instance, caller, callerBal)
}

func (k Keeper) burnShares(ctx context.Context, instance, caller sdk.AccAddress, shares math.Int) error {
	callerBal := k.GetDepositBalance(ctx, instance, caller)
	callerBal.Liquidity = callerBal.Liquidity.Sub(shares)
	if err := k.setDepositBalance(ctx, instance, caller, callerBal); err != nil {
		return err
	}
	poolBal := k.GetDepositBalance(ctx, instance, instance)
	poolBal.Liquidity = poolBal.Liquidity.Sub(shares)
	return k.setDepositBalance(ctx, instance, instance, poolBal)
}

func (k Keeper) emitLiquidityEvent(ctx context.Context, eventType string, instance, caller sdk.AccAddress, shares math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyInstance, instance.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, caller.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)
}
