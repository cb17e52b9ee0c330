package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

func (s *SwapTestSuite) TestInstantSwap() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))

	s.deposit(instance, s.trader, "alpha", math.NewInt(1_000))
	out, err := s.f.Swap.InstantSwap(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(1_000), math.ZeroInt())
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(999), out)

	bal := s.f.Swap.GetDepositBalance(s.f.Ctx, instance, s.trader)
	s.Require().Equal(math.ZeroInt(), bal.A)
	s.Require().Equal(math.NewInt(999), bal.B)

	reserves := s.reserves(instance)
	s.Require().Equal(math.NewInt(1_001_000), reserves.ReserveA)
	s.Require().Equal(math.NewInt(999_001), reserves.ReserveB)
}

func (s *SwapTestSuite) TestInstantSwapShiftsVirtualPools() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))

	before, err := s.f.Swap.GetVirtualState(s.f.Ctx, instance)
	s.Require().NoError(err)

	s.deposit(instance, s.trader, "alpha", math.NewInt(1_000))
	out, err := s.f.Swap.InstantSwap(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(1_000), math.ZeroInt())
	s.Require().NoError(err)

	// Both virtual pools follow the actual reserve movement.
	after, err := s.f.Swap.GetVirtualState(s.f.Ctx, instance)
	s.Require().NoError(err)
	want := before.VirtualAtoB.ApplyTrade(types.SideA, math.NewInt(1_000), out)
	s.Require().Equal(want, after.VirtualAtoB)
	want = before.VirtualBtoA.ApplyTrade(types.SideA, math.NewInt(1_000), out)
	s.Require().Equal(want, after.VirtualBtoA)
}

func (s *SwapTestSuite) TestInstantSwapsCannotDrainLockedOutput() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000), math.NewInt(1_000))

	lockID, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.rival, "alpha", math.NewInt(1_000), math.ZeroInt())
	s.Require().NoError(err)
	lock, found := s.f.Swap.GetLock(s.f.Ctx, instance, lockID)
	s.Require().True(found)
	s.Require().Equal(math.NewInt(500), lock.AmountOut)

	// Heavy same-direction traffic is quoted against the lock-adjusted
	// virtual reserves, so it can never take the output the pool owes.
	realized := s.f.Swap.RealizedLiquidity(s.f.Ctx, instance)
	for _, want := range []math.Int{math.NewInt(490), math.NewInt(4)} {
		s.deposit(instance, s.trader, "alpha", math.NewInt(100_000))
		out, err := s.f.Swap.InstantSwap(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(100_000), math.ZeroInt())
		s.Require().NoError(err)
		s.Require().Equal(want, out)

		after := s.f.Swap.RealizedLiquidity(s.f.Ctx, instance)
		s.Require().True(after.GTE(realized),
			"realized liquidity fell from %s to %s", realized, after)
		realized = after
	}

	reserves := s.reserves(instance)
	s.Require().Equal(math.NewInt(201_000), reserves.ReserveA)
	s.Require().Equal(math.NewInt(506), reserves.ReserveB)
	s.Require().True(reserves.ReserveB.GTE(lock.AmountOut))

	s.deposit(instance, s.rival, "alpha", math.NewInt(1_000))
	out, err := s.f.Swap.ExecuteLockSwap(s.f.Ctx, instance, s.rival, lockID)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(500), out)
}

func (s *SwapTestSuite) TestInstantSwapErrors() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	s.createToken("gamma", math.NewInt(1_000_000_000))

	empty, err := s.f.Swap.CreateSwapInstance(s.f.Ctx, "alpha", "beta", 0)
	s.Require().NoError(err)
	_, err = s.f.Swap.InstantSwap(s.f.Ctx, empty, s.trader, "alpha", math.NewInt(1_000), math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrNoLiquidity)

	instance := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))

	_, err = s.f.Swap.InstantSwap(s.f.Ctx, instance, s.trader, "gamma", math.NewInt(1_000), math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrUnknownToken)

	s.deposit(instance, s.trader, "alpha", math.NewInt(1_000))
	_, err = s.f.Swap.InstantSwap(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(1_000), math.NewInt(1_000))
	s.Require().ErrorIs(err, types.ErrSlippageExceeded)

	// Without enough deposited input the swap fails before quoting funds out.
	_, err = s.f.Swap.InstantSwap(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(5_000), math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrInsufficientBalance)
}

func (s *SwapTestSuite) TestInstantSwapPricedAgainstOutstandingLocks() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	fresh := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))
	locked := s.fundedInstance("alpha", "beta", 0, math.NewInt(1_000_000), math.NewInt(1_000_000))

	lockID, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, locked, s.rival, "alpha", math.NewInt(200_000), math.ZeroInt())
	s.Require().NoError(err)

	amount := math.NewInt(10_000)
	s.deposit(fresh, s.trader, "alpha", amount)
	s.deposit(locked, s.trader, "alpha", amount)

	freshOut, err := s.f.Swap.InstantSwap(s.f.Ctx, fresh, s.trader, "alpha", amount, math.ZeroInt())
	s.Require().NoError(err)
	lockedOut, err := s.f.Swap.InstantSwap(s.f.Ctx, locked, s.trader, "alpha", amount, math.ZeroInt())
	s.Require().NoError(err)
	s.Require().True(lockedOut.LT(freshOut),
		"swap alongside an outstanding lock got %s, fresh pool gave %s", lockedOut, freshOut)

	// The pool can still honor the lock after the swap.
	s.deposit(locked, s.rival, "alpha", math.NewInt(200_000))
	_, err = s.f.Swap.ExecuteLockSwap(s.f.Ctx, locked, s.rival, lockID)
	s.Require().NoError(err)
}
