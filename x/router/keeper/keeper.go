package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/lockdex-labs/lockdex/x/router/types"
)

// ModuleAddress is the account the router takes custody through. Every
// in-flight route's funds sit here between custody and settlement.
var ModuleAddress = sdk.AccAddress(address.Module(types.ModuleName))

// Keeper chains registered swap instances into atomic multi-hop routes.
type Keeper struct {
	storeKey    storetypes.StoreKey
	swapKeeper  types.SwapKeeper
	tokenKeeper types.TokenKeeper
	authority   string
	metrics     *Metrics
}

func NewKeeper(storeKey storetypes.StoreKey, swapKeeper types.SwapKeeper, tokenKeeper types.TokenKeeper, authority string) Keeper {
	return Keeper{
		storeKey:    storeKey,
		swapKeeper:  swapKeeper,
		tokenKeeper: tokenKeeper,
		authority:   authority,
		metrics:     routerMetrics(),
	}
}

// GetAuthority returns the account allowed to register swap contracts.
func (k Keeper) GetAuthority() string {
	return k.authority
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(k.storeKey)
}
