package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

// AcquireSwapLock reserves a guaranteed exchange rate for the caller without
// taking any funds. The output is priced against the worse of the actual
// reserves and the direction's virtual reserves, and the virtual pool for
// the direction immediately absorbs the prospective trade so that later
// quotes in the same direction see it.
func (k Keeper) AcquireSwapLock(ctx context.Context, instance, caller sdk.AccAddress, denom string, amountIn, minimumOut math.Int) (uint64, error) {
	pool, err := k.GetPool(ctx, instance)
	if err != nil {
		return 0, err
	}
	direction, err := pool.SideOf(denom)
	if err != nil {
		return 0, err
	}
	if !amountIn.IsPositive() {
		return 0, types.ErrInvalidAmount.Wrapf("lock input %s", amountIn)
	}

	actual := k.Reserves(ctx, instance)
	if !actual.ReserveA.IsPositive() || !actual.ReserveB.IsPositive() {
		return 0, types.ErrNoLiquidity.Wrapf("instance %s", instance)
	}
	vs, err := k.GetVirtualState(ctx, instance)
	if err != nil {
		return 0, err
	}
	if max := k.GetParams(ctx).MaxLocksPerAccount; max > 0 {
		var held uint32
		for _, lock := range k.Locks(ctx, instance) {
			if lock.Owner == caller.String() {
				held++
			}
		}
		if held >= max {
			return 0, types.ErrTooManyLocks.Wrapf("account %s holds %d of %d", caller, held, max)
		}
	}

	amountOut := quoteBest(pool, actual, vs.Virtual(direction), direction, amountIn)
	if amountOut.LT(minimumOut) {
		return 0, types.ErrSlippageExceeded.Wrapf(
			"achievable output %s below requested minimum %s", amountOut, minimumOut)
	}

	lock := types.Lock{
		ID:        vs.NextLockID,
		AmountIn:  amountIn,
		AmountOut: amountOut,
		Direction: direction,
		Owner:     caller.String(),
	}
	vs.NextLockID++
	vs = vs.WithVirtual(direction, vs.Virtual(direction).ApplyTrade(direction, amountIn, amountOut))
	vs.OutstandingIn = addOutstanding(vs.OutstandingIn, direction, amountIn)

	if err := k.setLock(ctx, instance, lock); err != nil {
		return 0, err
	}
	if err := k.setVirtualState(ctx, instance, vs); err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLockAcquired,
			sdk.NewAttribute(types.AttributeKeyInstance, instance.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, caller.String()),
			sdk.NewAttribute(types.AttributeKeyLockID, strconv.FormatUint(lock.ID, 10)),
			sdk.NewAttribute(types.AttributeKeyDirection, direction.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)
	k.metrics.LocksAcquired.Inc()
	return lock.ID, nil
}

// ExecuteLockSwap settles an outstanding lock at its guaranteed rate from
// the owner's deposit balance. The actual reserves absorb the trade, and the
// opposite direction's virtual pool shifts by the same deltas so its quotes
// track the tokens that really moved. The lock's own virtual pool already
// priced this trade in at acquisition and is left alone. A failed execution
// leaves the lock outstanding.
func (k Keeper) ExecuteLockSwap(ctx context.Context, instance, caller sdk.AccAddress, lockID uint64) (math.Int, error) {
	if _, err := k.GetPool(ctx, instance); err != nil {
		return math.Int{}, err
	}
	lock, found := k.GetLock(ctx, instance, lockID)
	if !found {
		return math.Int{}, types.ErrUnknownLock.Wrapf("lock %d at instance %s", lockID, instance)
	}
	if lock.Owner != caller.String() {
		return math.Int{}, types.ErrPermissionDenied.Wrapf("lock %d belongs to %s", lockID, lock.Owner)
	}

	deposited := k.GetDepositBalance(ctx, instance, caller).AmountOf(lock.Direction)
	if deposited.LT(lock.AmountIn) {
		return math.Int{}, types.ErrInsufficientDeposit.Wrapf(
			"lock %d needs %s, caller deposited %s", lockID, lock.AmountIn, deposited)
	}

	outSide := lock.Direction.Opposite()
	if err := k.moveSide(ctx, instance, caller, instance, lock.Direction, lock.AmountIn); err != nil {
		return math.Int{}, err
	}
	if err := k.moveSide(ctx, instance, instance, caller, outSide, lock.AmountOut); err != nil {
		return math.Int{}, err
	}

	vs, err := k.GetVirtualState(ctx, instance)
	if err != nil {
		return math.Int{}, err
	}
	vs = vs.WithVirtual(outSide, vs.Virtual(outSide).ApplyTrade(lock.Direction, lock.AmountIn, lock.AmountOut))
	vs.OutstandingIn = subOutstanding(vs.OutstandingIn, lock.Direction, lock.AmountIn)
	if err := k.setVirtualState(ctx, instance, vs); err != nil {
		return math.Int{}, err
	}
	k.deleteLock(ctx, instance, lockID)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLockExecuted,
			sdk.NewAttribute(types.AttributeKeyInstance, instance.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, caller.String()),
			sdk.NewAttribute(types.AttributeKeyLockID, strconv.FormatUint(lockID, 10)),
			sdk.NewAttribute(types.AttributeKeyAmountIn, lock.AmountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, lock.AmountOut.String()),
		),
	)
	k.metrics.LocksExecuted.Inc()
	return lock.AmountOut, nil
}

// CancelLock releases an outstanding lock without trading. Only the virtual
// pool that priced the lock in reverts; no real tokens ever moved.
func (k Keeper) CancelLock(ctx context.Context, instance, caller sdk.AccAddress, lockID uint64) error {
	if _, err := k.GetPool(ctx, instance); err != nil {
		return err
	}
	lock, found := k.GetLock(ctx, instance, lockID)
	if !found {
		return types.ErrUnknownLock.Wrapf("lock %d at instance %s", lockID, instance)
	}
	if lock.Owner != caller.String() {
		return types.ErrPermissionDenied.Wrapf("lock %d belongs to %s", lockID, lock.Owner)
	}

	vs, err := k.GetVirtualState(ctx, instance)
	if err != nil {
		return err
	}
	vs = vs.WithVirtual(lock.Direction, vs.Virtual(lock.Direction).RevertTrade(lock.Direction, lock.AmountIn, lock.AmountOut))
	vs.OutstandingIn = subOutstanding(vs.OutstandingIn, lock.Direction, lock.AmountIn)
	if err := k.setVirtualState(ctx, instance, vs); err != nil {
		return err
	}
	k.deleteLock(ctx, instance, lockID)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLockCancelled,
			sdk.NewAttribute(types.AttributeKeyInstance, instance.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, caller.String()),
			sdk.NewAttribute(types.AttributeKeyLockID, strconv.FormatUint(lockID, 10)),
		),
	)
	k.metrics.LocksCancelled.Inc()
	return nil
}

func addOutstanding(sums types.LockSums, direction types.Side, amount math.Int) types.LockSums {
	if direction == types.SideA {
		sums.AIn = sums.AIn.Add(amount)
	} else {
		sums.BIn = sums.BIn.Add(amount)
	}
	return sums
}

func subOutstanding(sums types.LockSums, direction types.Side, amount math.Int) types.LockSums {
	if direction == types.SideA {
		sums.AIn = sums.AIn.Sub(amount)
	} else {
		sums.BIn = sums.BIn.Sub(amount)
	}
	return sums
}
