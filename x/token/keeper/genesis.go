package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/goccy/go-json"

	"github.com/lockdex-labs/lockdex/x/token/types"
)

// InitGenesis initializes the token module state from genesis data.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}

	store := k.getStore(ctx)
	for _, token := range genState.Tokens {
		bz, err := json.Marshal(token)
		if err != nil {
			return fmt.Errorf("InitGenesis: marshal token %s: %w", token.Denom, err)
		}
		store.Set(TokenKey(token.Denom), bz)
	}

	for _, balance := range genState.Balances {
		holder, err := sdk.AccAddressFromBech32(balance.Holder)
		if err != nil {
			return fmt.Errorf("InitGenesis: holder address %q: %w", balance.Holder, err)
		}
		if err := k.setBalance(ctx, balance.Denom, holder, balance.Balance); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the token module state.
func (k Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	store := k.getStore(ctx)
	genState := types.DefaultGenesis()

	it := storetypes.KVStorePrefixIterator(store, TokenKeyPrefix)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		var token types.Token
		if err := json.Unmarshal(it.Value(), &token); err != nil {
			return nil, fmt.Errorf("ExportGenesis: unmarshal token: %w", err)
		}
		genState.Tokens = append(genState.Tokens, token)
	}

	for _, token := range genState.Tokens {
		prefix := BalanceDenomPrefix(token.Denom)
		bit := storetypes.KVStorePrefixIterator(store, prefix)
		for ; bit.Valid(); bit.Next() {
			// Key layout after the prefix: length-prefixed holder address.
			rest := bit.Key()[len(prefix):]
			if len(rest) < 1 || len(rest) != int(rest[0])+1 {
				bit.Close()
				return nil, fmt.Errorf("ExportGenesis: malformed balance key for %s", token.Denom)
			}
			holder := sdk.AccAddress(rest[1:])

			var balance math.Int
			if err := balance.Unmarshal(bit.Value()); err != nil {
				bit.Close()
				return nil, fmt.Errorf("ExportGenesis: unmarshal balance: %w", err)
			}
			genState.Balances = append(genState.Balances, types.GenesisBalance{
				Denom:   token.Denom,
				Holder:  holder.String(),
				Balance: balance,
			})
		}
		bit.Close()
	}
	return genState, nil
}
