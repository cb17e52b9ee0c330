package keeper

import (
	"context"

	"github.com/goccy/go-json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/router/types"
)

// RegisterSwapContract adds a swap instance to the route directory. Only the
// router authority may register; entries are permanent once added.
func (k Keeper) RegisterSwapContract(ctx context.Context, caller sdk.AccAddress, swapAddress, tokenA, tokenB string) error {
	if caller.String() != k.authority {
		return types.ErrUnauthorized.Wrapf("caller %s, authority %s", caller, k.authority)
	}
	store := k.getStore(ctx)
	if store.Has(ContractKey(swapAddress)) {
		return types.ErrContractExists.Wrapf("contract %s", swapAddress)
	}

	info := types.SwapContractInfo{Address: swapAddress, TokenA: tokenA, TokenB: tokenB}
	bz, err := json.Marshal(info)
	if err != nil {
		return err
	}
	store.Set(ContractKey(swapAddress), bz)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeContractRegistered,
			sdk.NewAttribute(types.AttributeKeySwapAddress, swapAddress),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenB),
		),
	)
	return nil
}

// GetSwapContract returns one directory entry.
func (k Keeper) GetSwapContract(ctx context.Context, swapAddress string) (types.SwapContractInfo, bool) {
	bz := k.getStore(ctx).Get(ContractKey(swapAddress))
	if bz == nil {
		return types.SwapContractInfo{}, false
	}
	var info types.SwapContractInfo
	if err := json.Unmarshal(bz, &info); err != nil {
		return types.SwapContractInfo{}, false
	}
	return info, true
}

// SwapContracts returns every directory entry in address order.
func (k Keeper) SwapContracts(ctx context.Context) []types.SwapContractInfo {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ContractKeyPrefix)
	defer iterator.Close()

	var contracts []types.SwapContractInfo
	for ; iterator.Valid(); iterator.Next() {
		var info types.SwapContractInfo
		if err := json.Unmarshal(iterator.Value(), &info); err != nil {
			continue
		}
		contracts = append(contracts, info)
	}
	return contracts
}
