package keeper

import (
	"context"
	"encoding/binary"

	"github.com/goccy/go-json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

// CreateSwapInstance deploys a new swap instance for the given token pair and
// per-mille swap fee. Each instance gets its own deterministic address
// derived from the module name and a monotonic sequence, so identical pairs
// can be deployed more than once.
func (k Keeper) CreateSwapInstance(ctx context.Context, tokenA, tokenB string, swapFeePerMille uint16) (sdk.AccAddress, error) {
	seq := k.nextInstanceSequence(ctx)
	derivation := make([]byte, 8)
	binary.BigEndian.PutUint64(derivation, seq)
	instance := sdk.AccAddress(address.Module(types.ModuleName, derivation))

	pool := types.PoolState{
		Address:         instance.String(),
		TokenA:          tokenA,
		TokenB:          tokenB,
		SwapFeePerMille: swapFeePerMille,
	}
	if err := pool.Validate(); err != nil {
		return nil, err
	}
	if params := k.GetParams(ctx); swapFeePerMille > params.MaxSwapFeePerMille {
		return nil, types.ErrConfiguration.Wrapf(
			"swap fee %d above module maximum %d per mille", swapFeePerMille, params.MaxSwapFeePerMille)
	}

	store := k.getStore(ctx)
	if store.Has(InstanceKey(instance)) {
		return nil, types.ErrInstanceExists.Wrapf("instance %s", instance)
	}
	if err := k.setPool(ctx, instance, pool); err != nil {
		return nil, err
	}

	empty := types.ReservePair{ReserveA: math.ZeroInt(), ReserveB: math.ZeroInt()}
	virtual := types.VirtualState{
		VirtualAtoB:   empty,
		VirtualBtoA:   empty,
		OutstandingIn: types.LockSums{AIn: math.ZeroInt(), BIn: math.ZeroInt()},
	}
	if err := k.setVirtualState(ctx, instance, virtual); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Info("swap instance deployed",
		"instance", instance.String(), "token_a", tokenA, "token_b", tokenB, "fee_per_mille", swapFeePerMille)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInstanceCreated,
			sdk.NewAttribute(types.AttributeKeyInstance, instance.String()),
			sdk.NewAttribute("token_a", tokenA),
			sdk.NewAttribute("token_b", tokenB),
		),
	)
	k.metrics.InstancesCreated.Inc()
	return instance, nil
}

// GetPool returns the configuration of a swap instance.
func (k Keeper) GetPool(ctx context.Context, instance sdk.AccAddress) (types.PoolState, error) {
	store := k.getStore(ctx)
	bz := store.Get(InstanceKey(instance))
	if bz == nil {
		return types.PoolState{}, types.ErrInstanceNotFound.Wrapf("instance %s", instance)
	}
	var pool types.PoolState
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.PoolState{}, err
	}
	return pool, nil
}

func (k Keeper) setPool(ctx context.Context, instance sdk.AccAddress, pool types.PoolState) error {
	bz, err := json.Marshal(pool)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(InstanceKey(instance), bz)
	return nil
}

// Reserves returns the actual pool reserves, read from the instance's own
// balance entry.
func (k Keeper) Reserves(ctx context.Context, instance sdk.AccAddress) types.ReservePair {
	bal := k.GetDepositBalance(ctx, instance, instance)
	return types.ReservePair{ReserveA: bal.A, ReserveB: bal.B}
}

func (k Keeper) nextInstanceSequence(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	var seq uint64
	if bz := store.Get(InstanceSequenceKey); bz != nil {
		seq = binary.BigEndian.Uint64(bz)
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, seq+1)
	store.Set(InstanceSequenceKey, next)
	return seq
}
