package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Keeper of the token store. One keeper manages any number of token ledgers,
// keyed by denom; each ledger tracks balances and allowances for its token.
type Keeper struct {
	storeKey storetypes.StoreKey
}

// NewKeeper creates a new token Keeper instance
func NewKeeper(key storetypes.StoreKey) Keeper {
	return Keeper{storeKey: key}
}

// getStore returns the KVStore for the token module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
