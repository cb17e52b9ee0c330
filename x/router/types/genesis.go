package types

// GenesisState holds the router module genesis data. Active routes are not
// exported: a route never outlives the transaction that started it.
type GenesisState struct {
	Params      Params             `json:"params"`
	Authority   string             `json:"authority"`
	Contracts   []SwapContractInfo `json:"contracts"`
	NextRouteID uint64             `json:"next_route_id"`
}

// DefaultGenesis returns an empty router module genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Contracts))
	for _, contract := range gs.Contracts {
		if contract.Address == "" {
			return ErrUnknownSwapAddress.Wrap("empty contract address in genesis")
		}
		if _, ok := seen[contract.Address]; ok {
			return ErrContractExists.Wrapf("duplicate contract %s in genesis", contract.Address)
		}
		seen[contract.Address] = struct{}{}
		if contract.TokenA == "" || contract.TokenB == "" || contract.TokenA == contract.TokenB {
			return ErrTokenMismatchAtHop.Wrapf("contract %s pair %s/%s", contract.Address, contract.TokenA, contract.TokenB)
		}
	}
	return nil
}
