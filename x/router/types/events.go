package types

// Event types for the router module
const (
	EventTypeContractRegistered = "router_contract_registered"
	EventTypeRouteStarted       = "router_route_started"
	EventTypeRouteLockAcquired  = "router_lock_acquired"
	EventTypeRouteHopExecuted   = "router_hop_executed"
	EventTypeRouteSettled       = "router_route_settled"
	EventTypeRouteAborted       = "router_route_aborted"

	AttributeKeyRouteID     = "route_id"
	AttributeKeyCaller      = "caller"
	AttributeKeySwapAddress = "swap_address"
	AttributeKeyHop         = "hop"
	AttributeKeyTokenIn     = "token_in"
	AttributeKeyTokenOut    = "token_out"
	AttributeKeyAmountIn    = "amount_in"
	AttributeKeyAmountOut   = "amount_out"
	AttributeKeyReason      = "reason"
)
