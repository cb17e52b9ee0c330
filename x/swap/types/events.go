package types

// Event types for the swap module
const (
	EventTypeInstanceCreated  = "swap_instance_created"
	EventTypeDeposit          = "swap_deposit"
	EventTypeWithdraw         = "swap_withdraw"
	EventTypeLiquidityMinted  = "swap_liquidity_minted"
	EventTypeLiquidityBurned  = "swap_liquidity_burned"
	EventTypeInstantSwap      = "swap_instant"
	EventTypeLockAcquired     = "swap_lock_acquired"
	EventTypeLockExecuted     = "swap_lock_executed"
	EventTypeLockCancelled    = "swap_lock_cancelled"

	AttributeKeyInstance  = "instance"
	AttributeKeyAccount   = "account"
	AttributeKeyToken     = "token"
	AttributeKeyAmount    = "amount"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyShares    = "shares"
	AttributeKeyLockID    = "lock_id"
	AttributeKeyDirection = "direction"
)
