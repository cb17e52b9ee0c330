package types

// GenesisBalance is one account's deposit balance at one swap instance.
type GenesisBalance struct {
	Account string       `json:"account"`
	Balance TokenBalance `json:"balance"`
}

// GenesisInstance is the full exported state of one swap instance.
type GenesisInstance struct {
	Pool     PoolState        `json:"pool"`
	Balances []GenesisBalance `json:"balances"`
	Virtual  VirtualState     `json:"virtual"`
	Locks    []Lock           `json:"locks"`
}

// GenesisState holds the swap module genesis data.
type GenesisState struct {
	Params    Params            `json:"params"`
	Instances []GenesisInstance `json:"instances"`
}

// DefaultGenesis returns an empty swap module genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Instances))
	for _, inst := range gs.Instances {
		if err := inst.Pool.Validate(); err != nil {
			return err
		}
		if _, ok := seen[inst.Pool.Address]; ok {
			return ErrInstanceExists.Wrapf("duplicate instance %s in genesis", inst.Pool.Address)
		}
		seen[inst.Pool.Address] = struct{}{}

		for _, lock := range inst.Locks {
			if lock.ID >= inst.Virtual.NextLockID {
				return ErrConfiguration.Wrapf(
					"instance %s: lock id %d not below next lock id %d",
					inst.Pool.Address, lock.ID, inst.Virtual.NextLockID)
			}
			if !lock.AmountIn.IsPositive() || lock.AmountOut.IsNegative() {
				return ErrInvalidAmount.Wrapf("instance %s: lock %d amounts", inst.Pool.Address, lock.ID)
			}
		}
		for _, bal := range inst.Balances {
			if bal.Balance.IsZero() {
				return ErrInvalidAmount.Wrapf(
					"instance %s: all-zero balance for %s must be removed, not stored",
					inst.Pool.Address, bal.Account)
			}
		}
	}
	return nil
}
