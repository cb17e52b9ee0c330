package keeper

import (
	"encoding/binary"

	"github.com/goccy/go-json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/router/types"
)

// InitGenesis writes the router module state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	store := ctx.KVStore(k.storeKey)
	for _, contract := range genState.Contracts {
		bz, err := json.Marshal(contract)
		if err != nil {
			return err
		}
		store.Set(ContractKey(contract.Address), bz)
	}
	if genState.NextRouteID > 0 {
		next := make([]byte, 8)
		binary.BigEndian.PutUint64(next, genState.NextRouteID)
		store.Set(NextRouteIDKey, next)
	}
	return nil
}

// ExportGenesis reads the router module state. In-flight routes are never
// exported; they settle or abort within the transaction that started them.
func (k Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	genState := types.DefaultGenesis()
	genState.Params = k.GetParams(ctx)
	genState.Authority = k.authority
	genState.Contracts = k.SwapContracts(ctx)

	store := ctx.KVStore(k.storeKey)
	if bz := store.Get(NextRouteIDKey); bz != nil {
		genState.NextRouteID = binary.BigEndian.Uint64(bz)
	}
	return genState, nil
}
