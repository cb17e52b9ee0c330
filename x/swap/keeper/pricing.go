package keeper

import (
	"cosmossdk.io/math"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

var permille = math.NewInt(1000)

// quote prices amountIn against a constant-product pool, deducting the
// per-mille fee from the input before it trades. Division rounds down,
// so the remainder stays with the pool.
//
//	out = (1000 - fee) * in * reserveOut / (1000 * reserveIn + (1000 - fee) * in)
func quote(reserveIn, reserveOut, amountIn math.Int, feePerMille uint16) math.Int {
	inAfterFee := amountIn.Mul(permille.SubRaw(int64(feePerMille)))
	numerator := inAfterFee.Mul(reserveOut)
	denominator := reserveIn.Mul(permille).Add(inAfterFee)
	return numerator.Quo(denominator)
}

// quoteBest prices amountIn against both the actual reserves and the
// virtual reserves for the trade direction, and returns the smaller
// output. Quoting against the worse of the two pools keeps every
// outstanding lock honorable no matter which order locks settle in.
func quoteBest(pool types.PoolState, actual, virtual types.ReservePair, direction types.Side, amountIn math.Int) math.Int {
	out := quoteAgainst(actual, direction, amountIn, pool.SwapFeePerMille)
	virtualOut := quoteAgainst(virtual, direction, amountIn, pool.SwapFeePerMille)
	if virtualOut.LT(out) {
		return virtualOut
	}
	return out
}

func quoteAgainst(reserves types.ReservePair, direction types.Side, amountIn math.Int, feePerMille uint16) math.Int {
	return quote(reserves.Reserve(direction), reserves.Reserve(direction.Opposite()), amountIn, feePerMille)
}
