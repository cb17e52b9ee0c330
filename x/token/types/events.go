package types

// Event types for the token module
const (
	EventTypeTokenCreated = "token_created"
	EventTypeTransfer     = "token_transfer"
	EventTypeApprove      = "token_approve"

	AttributeKeyDenom   = "denom"
	AttributeKeyFrom    = "from"
	AttributeKeyTo      = "to"
	AttributeKeyOwner   = "owner"
	AttributeKeySpender = "spender"
	AttributeKeyAmount  = "amount"
)
