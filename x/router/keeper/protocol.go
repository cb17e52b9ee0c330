package keeper

import (
	"context"
	"encoding/binary"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/router/types"
)

// RouteSwap trades amountIn of inputToken for outputToken through the given
// chain of swap instances, atomically. The route is validated before any
// funds move. The router then takes custody of the input, acquires a rate
// lock on every hop, and only once all locks are held executes the hops in
// order and pays the final output to the caller. If any lock cannot be
// acquired, every lock already held is cancelled and the caller is refunded
// in full.
func (k Keeper) RouteSwap(ctx context.Context, caller sdk.AccAddress, swapRoute []string, inputToken, outputToken string, amountIn, minimumOut math.Int) (math.Int, error) {
	hops, err := k.validateRoute(ctx, swapRoute, inputToken, outputToken)
	if err != nil {
		return math.Int{}, err
	}
	if !amountIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("route input %s", amountIn)
	}

	if err := k.tokenKeeper.TransferFrom(ctx, inputToken, ModuleAddress, caller, ModuleAddress, amountIn); err != nil {
		return math.Int{}, err
	}

	route := types.ActiveRoute{
		ID:            k.nextRouteID(ctx),
		Caller:        caller.String(),
		InputToken:    inputToken,
		OutputToken:   outputToken,
		AmountIn:      amountIn,
		MinimumOut:    minimumOut,
		Phase:         types.PhaseAcquiring,
		CurrentAmount: amountIn,
		Hops:          hops,
	}
	if err := k.setRoute(ctx, route); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRouteStarted,
			sdk.NewAttribute(types.AttributeKeyRouteID, strconv.FormatUint(route.ID, 10)),
			sdk.NewAttribute(types.AttributeKeyCaller, caller.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, inputToken),
			sdk.NewAttribute(types.AttributeKeyTokenOut, outputToken),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
		),
	)
	k.metrics.RoutesStarted.Inc()

	for {
		done, out, err := k.resumeRoute(ctx, route.ID)
		if err != nil {
			return math.Int{}, err
		}
		if done {
			return out, nil
		}
	}
}

// validateRoute checks the route shape against the directory and resolves
// the token each hop consumes and produces. It reads no balances and moves
// no funds; a route that fails here leaves no trace.
func (k Keeper) validateRoute(ctx context.Context, swapRoute []string, inputToken, outputToken string) ([]types.Hop, error) {
	if len(swapRoute) == 0 {
		return nil, types.ErrEmptyRoute
	}
	if max := int(k.GetParams(ctx).MaxRouteLength); len(swapRoute) > max {
		return nil, types.ErrRouteLengthExceeded.Wrapf("%d hops, maximum %d", len(swapRoute), max)
	}

	hops := make([]types.Hop, 0, len(swapRoute))
	current := inputToken
	for i, swapAddress := range swapRoute {
		info, found := k.GetSwapContract(ctx, swapAddress)
		if !found {
			return nil, types.ErrUnknownSwapAddress.Wrapf("hop %d: %s", i, swapAddress)
		}
		next, ok := info.OutputToken(current)
		if !ok {
			return nil, types.ErrTokenMismatchAtHop.Wrapf(
				"hop %d: instance %s trades %s/%s, incoming token %s",
				i, swapAddress, info.TokenA, info.TokenB, current)
		}
		hops = append(hops, types.Hop{
			SwapAddress: swapAddress,
			TokenIn:     current,
			TokenOut:    next,
			LockedOut:   math.ZeroInt(),
		})
		current = next
	}
	if current != outputToken {
		return nil, types.ErrOutputTokenMismatch.Wrapf("route ends in %s, requested %s", current, outputToken)
	}
	return hops, nil
}

// resumeRoute advances an in-flight route by one activation: one lock
// acquisition, one hop execution, or the final settlement. It reports done
// only after settlement, with the amount paid out.
func (k Keeper) resumeRoute(ctx context.Context, routeID uint64) (bool, math.Int, error) {
	route, found := k.getRoute(ctx, routeID)
	if !found {
		return false, math.Int{}, types.ErrUnknownRoute.Wrapf("route %d", routeID)
	}

	switch route.Phase {
	case types.PhaseAcquiring:
		return false, math.Int{}, k.acquireNextLock(ctx, route)
	case types.PhaseExecuting:
		return false, math.Int{}, k.executeNextHop(ctx, route)
	default:
		out, err := k.settleRoute(ctx, route)
		return err == nil, out, err
	}
}

func (k Keeper) acquireNextLock(ctx context.Context, route types.ActiveRoute) error {
	hop := route.Hops[route.HopIndex]
	instance, err := sdk.AccAddressFromBech32(hop.SwapAddress)
	if err != nil {
		return err
	}

	// Only the last hop enforces the route minimum; intermediate hops take
	// whatever rate they can lock, since aborting later costs nothing.
	minimumOut := math.ZeroInt()
	if route.HopIndex == len(route.Hops)-1 {
		minimumOut = route.MinimumOut
	}

	lockID, err := k.swapKeeper.AcquireSwapLock(ctx, instance, ModuleAddress, hop.TokenIn, route.CurrentAmount, minimumOut)
	if err != nil {
		abortErr := k.abortRoute(ctx, route, err)
		if abortErr != nil {
			return abortErr
		}
		return types.ErrCouldNotAcquireAllLocks.Wrapf("hop %d: %s", route.HopIndex, err)
	}
	lock, found := k.swapKeeper.GetLock(ctx, instance, lockID)
	if !found {
		return types.ErrRouteExecutionFailed.Wrapf("hop %d: acquired lock %d not found", route.HopIndex, lockID)
	}

	route.Hops[route.HopIndex].LockID = lockID
	route.Hops[route.HopIndex].LockedOut = lock.AmountOut
	route.Hops[route.HopIndex].Acquired = true
	route.CurrentAmount = lock.AmountOut
	route.HopIndex++
	if route.HopIndex == len(route.Hops) {
		route.Phase = types.PhaseExecuting
		route.HopIndex = 0
		route.CurrentAmount = route.AmountIn
	}
	if err := k.setRoute(ctx, route); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRouteLockAcquired,
			sdk.NewAttribute(types.AttributeKeyRouteID, strconv.FormatUint(route.ID, 10)),
			sdk.NewAttribute(types.AttributeKeySwapAddress, hop.SwapAddress),
			sdk.NewAttribute(types.AttributeKeyAmountOut, lock.AmountOut.String()),
		),
	)
	return nil
}

func (k Keeper) executeNextHop(ctx context.Context, route types.ActiveRoute) error {
	hop := route.Hops[route.HopIndex]
	instance, err := sdk.AccAddressFromBech32(hop.SwapAddress)
	if err != nil {
		return err
	}
	amountIn := route.CurrentAmount

	// Locks are already held, so nothing on this path can legitimately
	// fail; a failure here means state corruption and aborts the route
	// with the funds wherever they are, rather than guessing at a refund.
	if err := k.tokenKeeper.Approve(ctx, hop.TokenIn, ModuleAddress, instance, amountIn); err != nil {
		return types.ErrRouteExecutionFailed.Wrapf("hop %d approve: %s", route.HopIndex, err)
	}
	if err := k.swapKeeper.Deposit(ctx, instance, ModuleAddress, hop.TokenIn, amountIn); err != nil {
		return types.ErrRouteExecutionFailed.Wrapf("hop %d deposit: %s", route.HopIndex, err)
	}
	out, err := k.swapKeeper.ExecuteLockSwap(ctx, instance, ModuleAddress, hop.LockID)
	if err != nil {
		return types.ErrRouteExecutionFailed.Wrapf("hop %d execute: %s", route.HopIndex, err)
	}
	if err := k.swapKeeper.Withdraw(ctx, instance, ModuleAddress, hop.TokenOut, out); err != nil {
		return types.ErrRouteExecutionFailed.Wrapf("hop %d withdraw: %s", route.HopIndex, err)
	}

	route.CurrentAmount = out
	route.HopIndex++
	if route.HopIndex == len(route.Hops) {
		route.Phase = types.PhaseSettling
	}
	if err := k.setRoute(ctx, route); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRouteHopExecuted,
			sdk.NewAttribute(types.AttributeKeyRouteID, strconv.FormatUint(route.ID, 10)),
			sdk.NewAttribute(types.AttributeKeySwapAddress, hop.SwapAddress),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, out.String()),
		),
	)
	return nil
}

func (k Keeper) settleRoute(ctx context.Context, route types.ActiveRoute) (math.Int, error) {
	caller, err := sdk.AccAddressFromBech32(route.Caller)
	if err != nil {
		return math.Int{}, err
	}
	if err := k.tokenKeeper.Transfer(ctx, route.OutputToken, ModuleAddress, caller, route.CurrentAmount); err != nil {
		return math.Int{}, types.ErrRouteExecutionFailed.Wrapf("settlement: %s", err)
	}
	k.deleteRoute(ctx, route.ID)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRouteSettled,
			sdk.NewAttribute(types.AttributeKeyRouteID, strconv.FormatUint(route.ID, 10)),
			sdk.NewAttribute(types.AttributeKeyCaller, route.Caller),
			sdk.NewAttribute(types.AttributeKeyAmountOut, route.CurrentAmount.String()),
		),
	)
	k.metrics.RoutesCompleted.Inc()
	return route.CurrentAmount, nil
}

// abortRoute cancels every lock the route holds, refunds the caller's input
// in full, and removes the route.
func (k Keeper) abortRoute(ctx context.Context, route types.ActiveRoute, cause error) error {
	for _, hop := range route.Hops {
		if !hop.Acquired {
			continue
		}
		instance, err := sdk.AccAddressFromBech32(hop.SwapAddress)
		if err != nil {
			return err
		}
		if err := k.swapKeeper.CancelLock(ctx, instance, ModuleAddress, hop.LockID); err != nil {
			return err
		}
	}
	caller, err := sdk.AccAddressFromBech32(route.Caller)
	if err != nil {
		return err
	}
	if err := k.tokenKeeper.Transfer(ctx, route.InputToken, ModuleAddress, caller, route.AmountIn); err != nil {
		return err
	}
	k.deleteRoute(ctx, route.ID)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Error("route aborted during lock acquisition",
		"route_id", route.ID, "hop", route.HopIndex, "cause", cause)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRouteAborted,
			sdk.NewAttribute(types.AttributeKeyRouteID, strconv.FormatUint(route.ID, 10)),
			sdk.NewAttribute(types.AttributeKeyCaller, route.Caller),
			sdk.NewAttribute(types.AttributeKeyReason, cause.Error()),
		),
	)
	k.metrics.RoutesAborted.Inc()
	return nil
}

func (k Keeper) nextRouteID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	var id uint64
	if bz := store.Get(NextRouteIDKey); bz != nil {
		id = binary.BigEndian.Uint64(bz)
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, id+1)
	store.Set(NextRouteIDKey, next)
	return id
}
