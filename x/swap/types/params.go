package types

// Params are the operator-tunable knobs of the swap module.
type Params struct {
	// MaxSwapFeePerMille caps the fee a new instance may be deployed with.
	MaxSwapFeePerMille uint16 `json:"max_swap_fee_per_mille"`
	// MaxLocksPerAccount caps outstanding locks one account may hold at one
	// instance. Zero means unlimited.
	MaxLocksPerAccount uint32 `json:"max_locks_per_account"`
}

// DefaultParams returns default parameters for the swap module
func DefaultParams() Params {
	return Params{
		MaxSwapFeePerMille: 1000,
		MaxLocksPerAccount: 100,
	}
}

// Validate checks parameter sanity.
func (p Params) Validate() error {
	if p.MaxSwapFeePerMille > 1000 {
		return ErrConfiguration.Wrapf("max swap fee %d outside [0,1000] per mille", p.MaxSwapFeePerMille)
	}
	return nil
}
