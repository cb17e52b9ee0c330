package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

// InstantSwap trades amountIn of denom from the caller's deposit balance at
// the current price. The price is the worse of the actual reserves and the
// direction's virtual reserves, exactly like a lock acquisition. The trade
// moves the actual reserves and both virtual pools: each virtual pool is the
// actual reserves with its direction's outstanding locks applied, so a real
// reserve movement shifts every view. Skipping the virtual pools would let
// later swaps quote against stale reserves and drain output the pool still
// owes to outstanding locks.
func (k Keeper) InstantSwap(ctx context.Context, instance, caller sdk.AccAddress, denom string, amountIn, minimumOut math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, instance)
	if err != nil {
		return math.Int{}, err
	}
	direction, err := pool.SideOf(denom)
	if err != nil {
		return math.Int{}, err
	}
	if !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("swap input %s", amountIn)
	}

	actual := k.Reserves(ctx, instance)
	if !actual.ReserveA.IsPositive() || !actual.ReserveB.IsPositive() {
		return math.Int{}, types.ErrNoLiquidity.Wrapf("instance %s", instance)
	}
	vs, err := k.GetVirtualState(ctx, instance)
	if err != nil {
		return math.Int{}, err
	}

	amountOut := quoteBest(pool, actual, vs.Virtual(direction), direction, amountIn)
	if amountOut.LT(minimumOut) {
		return math.Int{}, types.ErrSlippageExceeded.Wrapf(
			"achievable output %s below requested minimum %s", amountOut, minimumOut)
	}

	outSide := direction.Opposite()
	if err := k.moveSide(ctx, instance, caller, instance, direction, amountIn); err != nil {
		return math.Int{}, err
	}
	if err := k.moveSide(ctx, instance, instance, caller, outSide, amountOut); err != nil {
		return math.Int{}, err
	}
	vs.VirtualAtoB = vs.VirtualAtoB.ApplyTrade(direction, amountIn, amountOut)
	vs.VirtualBtoA = vs.VirtualBtoA.ApplyTrade(direction, amountIn, amountOut)
	if err := k.setVirtualState(ctx, instance, vs); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInstantSwap,
			sdk.NewAttribute(types.AttributeKeyInstance, instance.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, caller.String()),
			sdk.NewAttribute(types.AttributeKeyDirection, direction.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)
	k.metrics.InstantSwaps.Inc()
	return amountOut, nil
}
