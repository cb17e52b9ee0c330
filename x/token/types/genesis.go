package types

import (
	"cosmossdk.io/math"
)

// GenesisBalance is one holder's balance of one token at genesis.
type GenesisBalance struct {
	Denom   string   `json:"denom"`
	Holder  string   `json:"holder"`
	Balance math.Int `json:"balance"`
}

// GenesisState holds the token module genesis data.
type GenesisState struct {
	Tokens   []Token          `json:"tokens"`
	Balances []GenesisBalance `json:"balances"`
}

// DefaultGenesis returns an empty token module genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate ensures the genesis state is well-formed: every token record is
// valid and per-token balances sum to the recorded total supply.
func (gs GenesisState) Validate() error {
	supplies := make(map[string]math.Int, len(gs.Tokens))
	for _, t := range gs.Tokens {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, ok := supplies[t.Denom]; ok {
			return ErrTokenExists.Wrapf("duplicate token %s in genesis", t.Denom)
		}
		supplies[t.Denom] = math.ZeroInt()
	}
	for _, b := range gs.Balances {
		sum, ok := supplies[b.Denom]
		if !ok {
			return ErrTokenNotFound.Wrapf("genesis balance references unknown token %s", b.Denom)
		}
		if b.Balance.IsNil() || !b.Balance.IsPositive() {
			return ErrInvalidAmount.Wrapf("genesis balance for %s must be positive", b.Holder)
		}
		supplies[b.Denom] = sum.Add(b.Balance)
	}
	for _, t := range gs.Tokens {
		if !supplies[t.Denom].Equal(t.TotalSupply) {
			return ErrInvalidAmount.Wrapf(
				"token %s: genesis balances sum to %s, total supply is %s",
				t.Denom, supplies[t.Denom], t.TotalSupply)
		}
	}
	return nil
}
