package keeper_test

import (
	"cosmossdk.io/math"

	testutilkeeper "github.com/lockdex-labs/lockdex/testutil/keeper"
)

func (s *SwapTestSuite) TestGenesisRoundTrip() {
	s.createToken("alpha", math.NewInt(1_000_000_000))
	s.createToken("beta", math.NewInt(1_000_000_000))
	instance := s.fundedInstance("alpha", "beta", 3, math.NewInt(1_000_000), math.NewInt(2_000_000))

	lockID, err := s.f.Swap.AcquireSwapLock(s.f.Ctx, instance, s.trader, "alpha", math.NewInt(10_000), math.ZeroInt())
	s.Require().NoError(err)
	s.deposit(instance, s.trader, "alpha", math.NewInt(10_000))

	exported, err := s.f.Swap.ExportGenesis(s.f.Ctx)
	s.Require().NoError(err)
	s.Require().NoError(exported.Validate())
	s.Require().Len(exported.Instances, 1)
	s.Require().Len(exported.Instances[0].Locks, 1)

	restored := testutilkeeper.NewFixture(s.T())
	s.Require().NoError(restored.Swap.InitGenesis(restored.Ctx, *exported))

	again, err := restored.Swap.ExportGenesis(restored.Ctx)
	s.Require().NoError(err)
	s.Require().Equal(exported, again)

	// The restored lock is still executable, which also needs the restored
	// balances and virtual state to agree.
	s.Require().NoError(restored.Swap.CheckLockSums(restored.Ctx, instance))
	_, err = restored.Swap.ExecuteLockSwap(restored.Ctx, instance, s.trader, lockID)
	s.Require().NoError(err)
}
