package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TokenKeeper is the fungible-token ledger the swap module settles against.
type TokenKeeper interface {
	Transfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error
	TransferFrom(ctx context.Context, denom string, spender, owner, to sdk.AccAddress, amount math.Int) error
	GetBalance(ctx context.Context, denom string, holder sdk.AccAddress) math.Int
}
