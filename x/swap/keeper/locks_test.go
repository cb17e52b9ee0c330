package keeper_test

import (
	"math/rand"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

func (s *SwapTestSuite) TestLockLifecycle() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))

	lockID, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(1_000), math.ZeroInt())
	s.Require().NoError(err)

	lock, found := s.f.Swap.GetLock(s.f.Ctx, instance, lockID)
	s.Require().True(found)
	s.Require().Equal(math.NewInt(999), lock.AmountOut)

	// Acquisition takes no funds; execution without a deposit fails and the
	// lock stays outstanding.
	_, err = s.f.Swap.ExecuteLockSwap(s.f.Ctx, instance, s.trader, lockID)
	s.Require().ErrorIs(err, types.ErrInsufficientDeposit)
	_, found = s.f.Swap.GetLock(s.f.Ctx, instance, lockID)
	s.Require().True(found)

	s.deposit(instance, s.trader, "alpha", math.NewInt(1_000))
	out, err := s.f.Swap.ExecuteLockSwap(s.f.Ctx, instance, s.trader, lockID)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(999), out)

	reserves := s.reserves(instance)
	s.Require().Equal(math.NewInt(1_001_000), reserves.ReserveA)
	s.Require().Equal(math.NewInt(999_001), reserves.ReserveB)
	s.Require().Equal(math.NewInt(999), s.f.Swap.GetDepositBalance(s.f.Ctx, instance, s.trader).B)

	// A lock is consumed exactly once.
	_, err = s.f.Swap.ExecuteLockSwap(s.f.Ctx, instance, s.trader, lockID)
	s.Require().ErrorIs(err, types.ErrUnknownLock)
	err = s.f.Swap.CancelLock(s.f.Ctx, instance, s.trader, lockID)
	s.Require().ErrorIs(err, types.ErrUnknownLock)
}

func (s *SwapTestSuite) TestLockIDsNeverReused() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))

	first, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(100), math.ZeroInt())
	s.Require().NoError(err)
	s.Require().NoError(s.f.Swap.CancelLock(s.f.Ctx, instance, s.trader, first))

	second, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(100), math.ZeroInt())
	s.Require().NoError(err)
	s.Require().Greater(second, first)
}

func (s *SwapTestSuite) TestLockOwnership() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))

	lockID, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(1_000), math.ZeroInt())
	s.Require().NoError(err)

	_, err = s.f.Swap.ExecuteLockSwap(s.f.Ctx, instance, s.rival, lockID)
	s.Require().ErrorIs(err, types.ErrPermissionDenied)
	err = s.f.Swap.CancelLock(s.f.Ctx, instance, s.rival, lockID)
	s.Require().ErrorIs(err, types.ErrPermissionDenied)
}

func (s *SwapTestSuite) TestAcquireSlippageLeavesNoTrace() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))

	before, err := s.f.Swap.GetVirtualState(s.f.Ctx, instance)
	s.Require().NoError(err)

	_, err = s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(1_000), math.NewInt(1_000))
	s.Require().ErrorIs(err, types.ErrSlippageExceeded)

	after, err := s.f.Swap.GetVirtualState(s.f.Ctx, instance)
	s.Require().NoError(err)
	s.Require().Equal(before, after)
	s.Require().Empty(s.f.Swap.Locks(s.f.Ctx, instance))
}

func (s *SwapTestSuite) TestCancelRestoresRate() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))

	first, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(1_000), math.ZeroInt())
	s.Require().NoError(err)
	firstLock, _ := s.f.Swap.GetLock(s.f.Ctx, instance, first)
	s.Require().NoError(s.f.Swap.CancelLock(s.f.Ctx, instance, s.trader, first))

	second, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(1_000), math.ZeroInt())
	s.Require().NoError(err)
	secondLock, _ := s.f.Swap.GetLock(s.f.Ctx, instance, second)

	s.Require().Equal(firstLock.AmountOut, secondLock.AmountOut)
}

func (s *SwapTestSuite) TestSecondSameDirectionLockStrictlyWorse() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))

	amount := math.NewInt(10_000)
	first, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", amount, math.ZeroInt())
	s.Require().NoError(err)
	second, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", amount, math.ZeroInt())
	s.Require().NoError(err)

	firstLock, _ := s.f.Swap.GetLock(s.f.Ctx, instance, first)
	secondLock, _ := s.f.Swap.GetLock(s.f.Ctx, instance, second)
	s.Require().True(secondLock.AmountOut.LT(firstLock.AmountOut),
		"second lock %s not worse than first %s", secondLock.AmountOut, firstLock.AmountOut)
}

// cpQuote is the published constant-product rate used to double-check the
// keeper's pricing from the outside.
func cpQuote(reserveIn, reserveOut, amountIn math.Int, feePerMille int64) math.Int {
	inAfterFee := amountIn.MulRaw(1000 - feePerMille)
	return inAfterFee.Mul(reserveOut).Quo(reserveIn.MulRaw(1000).Add(inAfterFee))
}

func (s *SwapTestSuite) TestAcquireNeverBeatsEitherQuote() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 3, math.NewInt(5_000_000), math.NewInt(2_000_000))

	// Pile up locks in both directions, then check each new acquisition
	// against the actual and virtual rates prevailing when it was taken.
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		denom, direction := "alpha", types.SideA
		if r.Intn(2) == 1 {
			denom, direction = "beta", types.SideB
		}
		amount := math.NewInt(r.Int63n(50_000) + 1)

		actual := s.reserves(instance)
		vs, err := s.f.Swap.GetVirtualState(s.f.Ctx, instance)
		s.Require().NoError(err)
		virtual := vs.Virtual(direction)

		lockID, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, denom, amount, math.ZeroInt())
		s.Require().NoError(err)
		lock, _ := s.f.Swap.GetLock(s.f.Ctx, instance, lockID)

		actualQuote := cpQuote(actual.Reserve(direction), actual.Reserve(direction.Opposite()), amount, 3)
		virtualQuote := cpQuote(virtual.Reserve(direction), virtual.Reserve(direction.Opposite()), amount, 3)
		s.Require().True(lock.AmountOut.LTE(actualQuote), "lock beats the actual rate")
		s.Require().True(lock.AmountOut.LTE(virtualQuote), "lock beats the virtual rate")
	}
	s.Require().NoError(s.f.Swap.CheckLockSums(s.f.Ctx, instance))
}

func (s *SwapTestSuite) TestHighVolumeLockMatchesInstantRate() {
	depthA := math.NewInt(1 << 52)
	depthB := math.NewInt(1 << 50)
	amount := math.NewInt(1 << 45)
	supply := depthA.MulRaw(4)
	s.createToken("alpha", supply)
	s.createToken("beta", supply)
	s.createToken("gamma", supply)
	s.createToken("delta", supply)

	swapPool := s.fundedInstance("alpha", "beta", 0, depthA, depthB)
	lockPool := s.fundedInstance("gamma", "delta", 0, depthA, depthB)

	s.deposit(swapPool, s.trader, "alpha", amount)
	instantOut, err := s.f.Swap.InstantSwap(s.f.Ctx, swapPool, s.trader, "alpha", amount, math.ZeroInt())
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(8_727_906_254_593), instantOut)

	lockID, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, lockPool, s.trader, "gamma", amount, math.ZeroInt())
	s.Require().NoError(err)
	lock, _ := s.f.Swap.GetLock(s.f.Ctx, lockPool, lockID)
	s.Require().Equal(instantOut, lock.AmountOut)

	s.deposit(lockPool, s.trader, "gamma", amount)
	out, err := s.f.Swap.ExecuteLockSwap(s.f.Ctx, lockPool, s.trader, lockID)
	s.Require().NoError(err)
	s.Require().Equal(instantOut, out)

	reserves := s.reserves(lockPool)
	s.Require().Equal(depthA.Add(amount), reserves.ReserveA)
	s.Require().Equal(depthB.Sub(out), reserves.ReserveB)
}

// worstCaseValue is the pool's constant-product value in whichever is worse
// of the two extremes: every outstanding lock lapses (actual reserves as
// they stand) or every outstanding lock executes (realized liquidity). This
// is the quantity the pessimistic dual-pool quoting protects.
func (s *SwapTestSuite) worstCaseValue(instance sdk.AccAddress) math.Int {
	product := s.reserves(instance).Product()
	realized := s.f.Swap.RealizedLiquidity(s.f.Ctx, instance)
	if realized.LT(product) {
		return realized
	}
	return product
}

func (s *SwapTestSuite) TestRealizedLiquidityNeverDecreases() {
	s.createToken("alpha", math.NewInt(1_000_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 3, math.NewInt(100_000_000), math.NewInt(100_000_000))

	r := rand.New(rand.NewSource(42))
	var outstanding []uint64
	floor := s.worstCaseValue(instance)

	for i := 0; i < 200; i++ {
		denom := "alpha"
		if r.Intn(2) == 1 {
			denom = "beta"
		}
		amount := math.NewInt(r.Int63n(10_000) + 1)
		if r.Intn(5) == 0 {
			// Pool-scale trades, so drains interleave with outstanding locks.
			amount = math.NewInt(r.Int63n(50_000_000) + 1)
		}

		switch op := r.Intn(4); {
		case op == 0:
			s.deposit(instance, s.trader, denom, amount)
			_, err := s.f.Swap.InstantSwap(s.f.Ctx, instance, s.trader, denom, amount, math.ZeroInt())
			s.Require().NoError(err)
		case op == 1:
			lockID, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, denom, amount, math.ZeroInt())
			s.Require().NoError(err)
			outstanding = append(outstanding, lockID)
		case len(outstanding) == 0:
			continue
		case op == 2:
			lockID := outstanding[len(outstanding)-1]
			outstanding = outstanding[:len(outstanding)-1]
			lock, found := s.f.Swap.GetLock(s.f.Ctx, instance, lockID)
			s.Require().True(found)
			in := "alpha"
			if lock.Direction == types.SideB {
				in = "beta"
			}
			s.deposit(instance, s.trader, in, lock.AmountIn)
			_, err := s.f.Swap.ExecuteLockSwap(s.f.Ctx, instance, s.trader, lockID)
			s.Require().NoError(err)
		default:
			lockID := outstanding[0]
			outstanding = outstanding[1:]
			s.Require().NoError(s.f.Swap.CancelLock(s.f.Ctx, instance, s.trader, lockID))
		}

		current := s.worstCaseValue(instance)
		s.Require().True(current.GTE(floor), "step %d: worst-case pool value fell from %s to %s", i, floor, current)
		floor = current
	}
	s.Require().NoError(s.f.Swap.CheckLockSums(s.f.Ctx, instance))
}

func (s *SwapTestSuite) TestMaxLocksPerAccount() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))

	params := s.f.Swap.GetParams(s.f.Ctx)
	params.MaxLocksPerAccount = 2
	s.Require().NoError(s.f.Swap.SetParams(s.f.Ctx, params))

	for i := 0; i < 2; i++ {
		_, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(100), math.ZeroInt())
		s.Require().NoError(err)
	}
	_, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(100), math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrTooManyLocks)

	// Other accounts are unaffected.
	_, err = s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.rival, "alpha", math.NewInt(100), math.ZeroInt())
	s.Require().NoError(err)
}
