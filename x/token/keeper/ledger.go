package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/goccy/go-json"

	"github.com/lockdex-labs/lockdex/x/token/types"
)

// CreateToken registers a new token ledger and mints the initial supply to
// the recipient. Registration-time violations are configuration errors.
func (k Keeper) CreateToken(ctx context.Context, denom, name, symbol string, decimals uint8, initialSupply math.Int, recipient sdk.AccAddress) error {
	token := types.Token{
		Denom:       denom,
		Name:        name,
		Symbol:      symbol,
		Decimals:    decimals,
		TotalSupply: initialSupply,
	}
	if err := token.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	if store.Has(TokenKey(denom)) {
		return types.ErrTokenExists.Wrapf("token %s already registered", denom)
	}

	bz, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("CreateToken: marshal token %s: %w", denom, err)
	}
	store.Set(TokenKey(denom), bz)

	if initialSupply.IsPositive() {
		if err := k.setBalance(ctx, denom, recipient, initialSupply); err != nil {
			return err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokenCreated,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, initialSupply.String()),
		),
	)
	return nil
}

// GetToken returns the registration record for a token.
func (k Keeper) GetToken(ctx context.Context, denom string) (types.Token, error) {
	store := k.getStore(ctx)
	bz := store.Get(TokenKey(denom))
	if bz == nil {
		return types.Token{}, types.ErrTokenNotFound.Wrapf("token %s", denom)
	}
	var token types.Token
	if err := json.Unmarshal(bz, &token); err != nil {
		return types.Token{}, fmt.Errorf("GetToken: unmarshal token %s: %w", denom, err)
	}
	return token, nil
}

// GetBalance returns a holder's balance, zero if no entry exists.
func (k Keeper) GetBalance(ctx context.Context, denom string, holder sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(BalanceKey(denom, holder))
	if bz == nil {
		return math.ZeroInt()
	}
	var balance math.Int
	if err := balance.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return balance
}

// setBalance writes a holder's balance, removing zero entries.
func (k Keeper) setBalance(ctx context.Context, denom string, holder sdk.AccAddress, balance math.Int) error {
	store := k.getStore(ctx)
	if balance.IsZero() {
		store.Delete(BalanceKey(denom, holder))
		return nil
	}
	bz, err := balance.Marshal()
	if err != nil {
		return fmt.Errorf("setBalance: marshal balance: %w", err)
	}
	store.Set(BalanceKey(denom, holder), bz)
	return nil
}

// GetAllowance returns the spender's remaining allowance on the owner's balance.
func (k Keeper) GetAllowance(ctx context.Context, denom string, owner, spender sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(AllowanceKey(denom, owner, spender))
	if bz == nil {
		return math.ZeroInt()
	}
	var allowance math.Int
	if err := allowance.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return allowance
}

func (k Keeper) setAllowance(ctx context.Context, denom string, owner, spender sdk.AccAddress, allowance math.Int) error {
	store := k.getStore(ctx)
	if allowance.IsZero() {
		store.Delete(AllowanceKey(denom, owner, spender))
		return nil
	}
	bz, err := allowance.Marshal()
	if err != nil {
		return fmt.Errorf("setAllowance: marshal allowance: %w", err)
	}
	store.Set(AllowanceKey(denom, owner, spender), bz)
	return nil
}

// Approve sets (not adds to) the spender's allowance on the owner's balance.
func (k Keeper) Approve(ctx context.Context, denom string, owner, spender sdk.AccAddress, amount math.Int) error {
	if _, err := k.GetToken(ctx, denom); err != nil {
		return err
	}
	if amount.IsNegative() {
		return types.ErrInvalidAmount.Wrap("allowance must be non-negative")
	}
	if err := k.setAllowance(ctx, denom, owner, spender, amount); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApprove,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Transfer moves tokens from one holder to another.
func (k Keeper) Transfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error {
	if _, err := k.GetToken(ctx, denom); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("transfer amount must be positive")
	}

	fromBalance := k.GetBalance(ctx, denom, from)
	if fromBalance.LT(amount) {
		return types.ErrInsufficientFunds.Wrapf("%s: balance %s, needed %s", denom, fromBalance, amount)
	}

	if err := k.setBalance(ctx, denom, from, fromBalance.Sub(amount)); err != nil {
		return err
	}
	toBalance := k.GetBalance(ctx, denom, to)
	if err := k.setBalance(ctx, denom, to, toBalance.Add(amount)); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// TransferFrom moves tokens out of the owner's balance on the spender's
// authority. The allowance check runs before the balance check so callers can
// distinguish the two failure modes; the allowance is decremented on success.
func (k Keeper) TransferFrom(ctx context.Context, denom string, spender, owner, to sdk.AccAddress, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("transfer amount must be positive")
	}

	allowance := k.GetAllowance(ctx, denom, owner, spender)
	if allowance.LT(amount) {
		return types.ErrInsufficientAllowance.Wrapf("%s: allowance %s, needed %s", denom, allowance, amount)
	}

	if err := k.Transfer(ctx, denom, owner, to, amount); err != nil {
		return err
	}
	return k.setAllowance(ctx, denom, owner, spender, allowance.Sub(amount))
}

// TotalSupply returns the registered total supply of a token.
func (k Keeper) TotalSupply(ctx context.Context, denom string) (math.Int, error) {
	token, err := k.GetToken(ctx, denom)
	if err != nil {
		return math.ZeroInt(), err
	}
	return token.TotalSupply, nil
}

// SumBalances adds up every holder's balance of a token. Exported for the
// conservation invariant: the sum must always equal the total supply.
func (k Keeper) SumBalances(ctx context.Context, denom string) math.Int {
	store := k.getStore(ctx)
	it := storetypes.KVStorePrefixIterator(store, BalanceDenomPrefix(denom))
	defer it.Close()

	sum := math.ZeroInt()
	for ; it.Valid(); it.Next() {
		var balance math.Int
		if err := balance.Unmarshal(it.Value()); err != nil {
			continue
		}
		sum = sum.Add(balance)
	}
	return sum
}
