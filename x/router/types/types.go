package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "router"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MaxRouteLength bounds how many swap instances one route may chain.
	MaxRouteLength = 5
)

// SwapContractInfo is one directory entry: a swap instance the router may
// chain into routes, with the token pair it trades. The directory is the
// router's source of truth for route validation; an address not registered
// here cannot appear in a route.
type SwapContractInfo struct {
	Address string `json:"address"`
	TokenA  string `json:"token_a"`
	TokenB  string `json:"token_b"`
}

// OutputToken returns the token the entry pays out when fed inputToken, or
// false if the entry does not trade inputToken at all.
func (c SwapContractInfo) OutputToken(inputToken string) (string, bool) {
	switch inputToken {
	case c.TokenA:
		return c.TokenB, true
	case c.TokenB:
		return c.TokenA, true
	default:
		return "", false
	}
}

// RoutePhase tracks how far an active route has progressed. A route only
// exists in the store while it is in flight; settled and aborted routes are
// removed.
type RoutePhase uint8

const (
	// PhaseAcquiring means locks are still being collected hop by hop.
	PhaseAcquiring RoutePhase = iota
	// PhaseExecuting means every lock is held and hops settle in order.
	PhaseExecuting
	// PhaseSettling means the final output awaits transfer to the caller.
	PhaseSettling
)

// Hop is one leg of a route. LockID and LockedOut are meaningful once
// Acquired is true.
type Hop struct {
	SwapAddress string   `json:"swap_address"`
	TokenIn     string   `json:"token_in"`
	TokenOut    string   `json:"token_out"`
	LockID      uint64   `json:"lock_id"`
	LockedOut   math.Int `json:"locked_out"`
	Acquired    bool     `json:"acquired"`
}

// ActiveRoute is the persisted continuation of one in-flight route swap.
// Each activation advances HopIndex within the current phase; CurrentAmount
// carries the running input for the next hop.
type ActiveRoute struct {
	ID            uint64     `json:"id"`
	Caller        string     `json:"caller"`
	InputToken    string     `json:"input_token"`
	OutputToken   string     `json:"output_token"`
	AmountIn      math.Int   `json:"amount_in"`
	MinimumOut    math.Int   `json:"minimum_out"`
	Phase         RoutePhase `json:"phase"`
	HopIndex      int        `json:"hop_index"`
	CurrentAmount math.Int   `json:"current_amount"`
	Hops          []Hop      `json:"hops"`
}
