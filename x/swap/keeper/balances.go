package keeper

import (
	"context"

	"github.com/goccy/go-json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

// GetDepositBalance returns the holder's deposit balance at the instance. A
// missing entry reads as all zero.
func (k Keeper) GetDepositBalance(ctx context.Context, instance, holder sdk.AccAddress) types.TokenBalance {
	bz := k.getStore(ctx).Get(BalanceKey(instance, holder))
	if bz == nil {
		return types.EmptyTokenBalance()
	}
	var bal types.TokenBalance
	if err := json.Unmarshal(bz, &bal); err != nil {
		return types.EmptyTokenBalance()
	}
	return bal
}

// setDepositBalance writes the holder's balance, deleting all-zero entries so
// the balance index only ever holds live accounts.
func (k Keeper) setDepositBalance(ctx context.Context, instance, holder sdk.AccAddress, bal types.TokenBalance) error {
	store := k.getStore(ctx)
	if bal.IsZero() {
		store.Delete(BalanceKey(instance, holder))
		return nil
	}
	bz, err := json.Marshal(bal)
	if err != nil {
		return err
	}
	store.Set(BalanceKey(instance, holder), bz)
	return nil
}

// creditSide adds amount to the holder's balance on one pair side.
func (k Keeper) creditSide(ctx context.Context, instance, holder sdk.AccAddress, side types.Side, amount math.Int) error {
	bal := k.GetDepositBalance(ctx, instance, holder)
	bal = bal.WithAmount(side, bal.AmountOf(side).Add(amount))
	return k.setDepositBalance(ctx, instance, holder, bal)
}

// debitSide removes amount from the holder's balance on one pair side,
// failing if the balance cannot cover it.
func (k Keeper) debitSide(ctx context.Context, instance, holder sdk.AccAddress, side types.Side, amount math.Int) error {
	bal := k.GetDepositBalance(ctx, instance, holder)
	held := bal.AmountOf(side)
	if held.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf(
			"account %s holds %s on side %s, needs %s", holder, held, side, amount)
	}
	bal = bal.WithAmount(side, held.Sub(amount))
	return k.setDepositBalance(ctx, instance, holder, bal)
}

// moveSide moves amount on one pair side between two internal balances.
func (k Keeper) moveSide(ctx context.Context, instance, from, to sdk.AccAddress, side types.Side, amount math.Int) error {
	if err := k.debitSide(ctx, instance, from, side, amount); err != nil {
		return err
	}
	return k.creditSide(ctx, instance, to, side, amount)
}

// Deposit pulls amount of denom from the caller's token balance into their
// deposit balance at the instance. The caller must have approved the
// instance address as a spender first.
func (k Keeper) Deposit(ctx context.Context, instance, caller sdk.AccAddress, denom string, amount math.Int) error {
	pool, err := k.GetPool(ctx, instance)
	if err != nil {
		return err
	}
	side, err := pool.SideOf(denom)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("deposit amount %s", amount)
	}
	if err := k.tokenKeeper.TransferFrom(ctx, denom, instance, caller, instance, amount); err != nil {
		return err
	}
	if err := k.creditSide(ctx, instance, caller, side, amount); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeyInstance, instance.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, caller.String()),
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Withdraw pays amount of denom out of the caller's deposit balance back to
// their token balance.
func (k Keeper) Withdraw(ctx context.Context, instance, caller sdk.AccAddress, denom string, amount math.Int) error {
	pool, err := k.GetPool(ctx, instance)
	if err != nil {
		return err
	}
	side, err := pool.SideOf(denom)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("withdraw amount %s", amount)
	}
	if err := k.debitSide(ctx, instance, caller, side, amount); err != nil {
		return err
	}
	if err := k.tokenKeeper.Transfer(ctx, denom, instance, caller, amount); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeyInstance, instance.String()),
			sdk.NewAttribute(types.AttributeKeyAccount, caller.String()),
			sdk.NewAttribute(types.AttributeKeyToken, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}
