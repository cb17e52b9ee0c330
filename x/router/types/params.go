package types

// Params are the operator-tunable knobs of the router module.
type Params struct {
	// MaxRouteLength bounds how many hops one route may chain.
	MaxRouteLength uint32 `json:"max_route_length"`
}

// DefaultParams returns default parameters for the router module
func DefaultParams() Params {
	return Params{MaxRouteLength: MaxRouteLength}
}

// Validate checks parameter sanity.
func (p Params) Validate() error {
	if p.MaxRouteLength == 0 {
		return ErrEmptyRoute.Wrap("max route length cannot be zero")
	}
	return nil
}
