package keeper

import (
	"context"

	"github.com/goccy/go-json"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

// ParamsKey holds the module parameter record.
var ParamsKey = []byte{0x06}

// GetParams returns the current parameters from the store
func (k Keeper) GetParams(ctx context.Context) types.Params {
	bz := k.getStore(ctx).Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams sets the parameters in the store
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(ParamsKey, bz)
	return nil
}
