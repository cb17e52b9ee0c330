package keeper

import (
	"github.com/goccy/go-json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

// InitGenesis writes the swap module state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	for _, inst := range genState.Instances {
		instance, err := sdk.AccAddressFromBech32(inst.Pool.Address)
		if err != nil {
			return err
		}
		if err := k.setPool(ctx, instance, inst.Pool); err != nil {
			return err
		}
		if err := k.setVirtualState(ctx, instance, inst.Virtual); err != nil {
			return err
		}
		for _, bal := range inst.Balances {
			holder, err := sdk.AccAddressFromBech32(bal.Account)
			if err != nil {
				return err
			}
			if err := k.setDepositBalance(ctx, instance, holder, bal.Balance); err != nil {
				return err
			}
		}
		for _, lock := range inst.Locks {
			if err := k.setLock(ctx, instance, lock); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExportGenesis reads the full swap module state.
func (k Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	genState := types.DefaultGenesis()
	genState.Params = k.GetParams(ctx)

	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, InstanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.PoolState
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return nil, err
		}
		instance, err := sdk.AccAddressFromBech32(pool.Address)
		if err != nil {
			return nil, err
		}
		virtual, err := k.GetVirtualState(ctx, instance)
		if err != nil {
			return nil, err
		}
		genState.Instances = append(genState.Instances, types.GenesisInstance{
			Pool:     pool,
			Balances: k.exportBalances(ctx, instance),
			Virtual:  virtual,
			Locks:    k.Locks(ctx, instance),
		})
	}
	return genState, nil
}

func (k Keeper) exportBalances(ctx sdk.Context, instance sdk.AccAddress) []types.GenesisBalance {
	store := ctx.KVStore(k.storeKey)
	prefix := BalanceInstancePrefix(instance)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var balances []types.GenesisBalance
	for ; iterator.Valid(); iterator.Next() {
		// The remainder of the key is the length-prefixed holder address.
		rest := iterator.Key()[len(prefix):]
		holder := sdk.AccAddress(rest[1 : 1+int(rest[0])])

		var bal types.TokenBalance
		if err := json.Unmarshal(iterator.Value(), &bal); err != nil {
			continue
		}
		balances = append(balances, types.GenesisBalance{
			Account: holder.String(),
			Balance: bal,
		})
	}
	return balances
}
