package types

import (
	"cosmossdk.io/math"
)

// Lock is a guarantee of AmountOut output tokens for AmountIn input tokens in
// the given direction. A lock is created by acquire, consumed exactly once by
// execute or cancel, and never mutated in between. Owner records the
// acquiring account for authorization; the record itself is owned by the
// instance's virtual state.
type Lock struct {
	ID        uint64   `json:"id"`
	AmountIn  math.Int `json:"amount_in"`
	AmountOut math.Int `json:"amount_out"`
	Direction Side     `json:"direction"`
	Owner     string   `json:"owner"`
}
