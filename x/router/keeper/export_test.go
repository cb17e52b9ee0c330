package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/router/types"
)

// ValidateRouteForTest exposes route validation for white-box tests.
func ValidateRouteForTest(k *Keeper, ctx context.Context, swapRoute []string, inputToken, outputToken string) ([]types.Hop, error) {
	return k.validateRoute(ctx, swapRoute, inputToken, outputToken)
}

// StartRouteForTest takes custody and persists the route continuation
// without advancing it, so tests can interleave other traffic between the
// route's phases.
func StartRouteForTest(k *Keeper, ctx context.Context, caller sdk.AccAddress, swapRoute []string, inputToken, outputToken string, amountIn, minimumOut math.Int) (uint64, error) {
	hops, err := k.validateRoute(ctx, swapRoute, inputToken, outputToken)
	if err != nil {
		return 0, err
	}
	if err := k.tokenKeeper.TransferFrom(ctx, inputToken, ModuleAddress, caller, ModuleAddress, amountIn); err != nil {
		return 0, err
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
		return 0, err
	}
	return route.ID, nil
}

// ResumeRouteForTest advances a persisted route by one activation.
func ResumeRouteForTest(k *Keeper, ctx context.Context, routeID uint64) (bool, math.Int, error) {
	return k.resumeRoute(ctx, routeID)
}

// GetRouteForTest reads a persisted route continuation.
func GetRouteForTest(k *Keeper, ctx context.Context, routeID uint64) (types.ActiveRoute, bool) {
	return k.getRoute(ctx, routeID)
}
