package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "swap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Side names one half of a swap pair. Every pool operation takes the side it
// acts on explicitly; a swap direction is named by its input side.
type Side uint8

const (
	// SideA is the first token of the pair.
	SideA Side = iota
	// SideB is the second token of the pair.
	SideB
)

// Opposite returns the other side of the pair.
func (s Side) Opposite() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	if s == SideA {
		return "a"
	}
	return "b"
}

// TokenBalance tracks how much of each pair token, and how many liquidity
// shares, one account owns inside one swap instance. The instance's own entry
// doubles as the actual pool reserves, with Liquidity holding the total
// minted shares. An all-zero balance is removed from the store, never kept.
type TokenBalance struct {
	A         math.Int `json:"a"`
	B         math.Int `json:"b"`
	Liquidity math.Int `json:"liquidity"`
}

// EmptyTokenBalance returns a zeroed balance.
func EmptyTokenBalance() TokenBalance {
	return TokenBalance{A: math.ZeroInt(), B: math.ZeroInt(), Liquidity: math.ZeroInt()}
}

// AmountOf returns the amount held on a pair side.
func (b TokenBalance) AmountOf(side Side) math.Int {
	if side == SideA {
		return b.A
	}
	return b.B
}

// WithAmount returns a copy with the given side set to amount.
func (b TokenBalance) WithAmount(side Side, amount math.Int) TokenBalance {
	if side == SideA {
		b.A = amount
	} else {
		b.B = amount
	}
	return b
}

// IsZero reports whether the account holds nothing at this instance.
func (b TokenBalance) IsZero() bool {
	return b.A.IsZero() && b.B.IsZero() && b.Liquidity.IsZero()
}

// ReservePair is a pair of pool reserves. The actual pool and both virtual
// pools are each one ReservePair.
type ReservePair struct {
	ReserveA math.Int `json:"reserve_a"`
	ReserveB math.Int `json:"reserve_b"`
}

// Reserve returns the reserve on a pair side.
func (r ReservePair) Reserve(side Side) math.Int {
	if side == SideA {
		return r.ReserveA
	}
	return r.ReserveB
}

// ApplyTrade moves amountIn onto the input side and amountOut off the output
// side for a trade whose input side is direction.
func (r ReservePair) ApplyTrade(direction Side, amountIn, amountOut math.Int) ReservePair {
	if direction == SideA {
		r.ReserveA = r.ReserveA.Add(amountIn)
		r.ReserveB = r.ReserveB.Sub(amountOut)
	} else {
		r.ReserveB = r.ReserveB.Add(amountIn)
		r.ReserveA = r.ReserveA.Sub(amountOut)
	}
	return r
}

// RevertTrade undoes ApplyTrade for the same trade.
func (r ReservePair) RevertTrade(direction Side, amountIn, amountOut math.Int) ReservePair {
	if direction == SideA {
		r.ReserveA = r.ReserveA.Sub(amountIn)
		r.ReserveB = r.ReserveB.Add(amountOut)
	} else {
		r.ReserveB = r.ReserveB.Sub(amountIn)
		r.ReserveA = r.ReserveA.Add(amountOut)
	}
	return r
}

// AddBoth adds liquidity to both reserves.
func (r ReservePair) AddBoth(amountA, amountB math.Int) ReservePair {
	r.ReserveA = r.ReserveA.Add(amountA)
	r.ReserveB = r.ReserveB.Add(amountB)
	return r
}

// Product returns the constant-product value of the pair.
func (r ReservePair) Product() math.Int {
	return r.ReserveA.Mul(r.ReserveB)
}

// PoolState is the deploy-time configuration of one swap instance. Reserves
// live in the instance's own TokenBalance entry, not here.
type PoolState struct {
	Address         string `json:"address"`
	TokenA          string `json:"token_a"`
	TokenB          string `json:"token_b"`
	SwapFeePerMille uint16 `json:"swap_fee_per_mille"`
}

// Validate checks the deploy-time configuration. A violation here is fatal at
// instance creation, never a per-call error.
func (p PoolState) Validate() error {
	if p.SwapFeePerMille > 1000 {
		return ErrConfiguration.Wrapf("swap fee %d outside [0,1000] per mille", p.SwapFeePerMille)
	}
	if p.TokenA == "" || p.TokenB == "" {
		return ErrConfiguration.Wrap("pair tokens cannot be empty")
	}
	if p.TokenA == p.TokenB {
		return ErrConfiguration.Wrap("pair tokens must differ")
	}
	return nil
}

// SideOf maps a token denom onto its side of the pair.
func (p PoolState) SideOf(denom string) (Side, error) {
	switch denom {
	case p.TokenA:
		return SideA, nil
	case p.TokenB:
		return SideB, nil
	default:
		return SideA, ErrUnknownToken.Wrapf("token %s: instance trades %s and %s", denom, p.TokenA, p.TokenB)
	}
}

// Denom returns the token denom on a pair side.
func (p PoolState) Denom(side Side) string {
	if side == SideA {
		return p.TokenA
	}
	return p.TokenB
}

// LockSums tracks the outstanding locked input per direction, keyed by the
// input side. It must always equal the sums derived from the stored locks.
type LockSums struct {
	AIn math.Int `json:"a_in"`
	BIn math.Int `json:"b_in"`
}

// VirtualState is the lock-tracking half of one swap instance: the monotonic
// lock id counter and the two pessimistic virtual pools, one per direction.
// Lock records themselves live in their own arena keyed by lock id.
type VirtualState struct {
	NextLockID    uint64      `json:"next_lock_id"`
	VirtualAtoB   ReservePair `json:"virtual_a_to_b"`
	VirtualBtoA   ReservePair `json:"virtual_b_to_a"`
	OutstandingIn LockSums    `json:"outstanding_in"`
}

// Virtual returns the virtual pool for the direction whose input side is
// direction.
func (v VirtualState) Virtual(direction Side) ReservePair {
	if direction == SideA {
		return v.VirtualAtoB
	}
	return v.VirtualBtoA
}

// WithVirtual returns a copy with the direction's virtual pool replaced.
func (v VirtualState) WithVirtual(direction Side, pool ReservePair) VirtualState {
	if direction == SideA {
		v.VirtualAtoB = pool
	} else {
		v.VirtualBtoA = pool
	}
	return v
}
