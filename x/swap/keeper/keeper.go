package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

// Keeper manages every swap instance: pool configuration, deposited
// balances, the dual virtual reserves, and the outstanding lock arena.
type Keeper struct {
	storeKey    storetypes.StoreKey
	tokenKeeper types.TokenKeeper
	metrics     *Metrics
}

func NewKeeper(storeKey storetypes.StoreKey, tokenKeeper types.TokenKeeper) Keeper {
	return Keeper{
		storeKey:    storeKey,
		tokenKeeper: tokenKeeper,
		metrics:     swapMetrics(),
	}
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(k.storeKey)
}
