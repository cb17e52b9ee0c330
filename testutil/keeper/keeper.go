package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	routerkeeper "github.com/lockdex-labs/lockdex/x/router/keeper"
	routertypes "github.com/lockdex-labs/lockdex/x/router/types"
	swapkeeper "github.com/lockdex-labs/lockdex/x/swap/keeper"
	swaptypes "github.com/lockdex-labs/lockdex/x/swap/types"
	tokenkeeper "github.com/lockdex-labs/lockdex/x/token/keeper"
	tokentypes "github.com/lockdex-labs/lockdex/x/token/types"
)

// Fixture wires the token, swap, and router keepers over one in-memory
// commit multistore, the way the application does.
type Fixture struct {
	Token  tokenkeeper.Keeper
	Swap   swapkeeper.Keeper
	Router routerkeeper.Keeper
	Ctx    sdk.Context
}

// Authority is the account allowed to register swap contracts in tests.
var Authority = sdk.AccAddress("router-authority----")

// NewFixture creates the three module keepers with fresh in-memory state.
func NewFixture(t testing.TB) Fixture {
	tokenKey := storetypes.NewKVStoreKey(tokentypes.StoreKey)
	swapKey := storetypes.NewKVStoreKey(swaptypes.StoreKey)
	routerKey := storetypes.NewKVStoreKey(routertypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(tokenKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(swapKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(routerKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	tokenKeeper := tokenkeeper.NewKeeper(tokenKey)
	swapKeeper := swapkeeper.NewKeeper(swapKey, tokenKeeper)
	routerKeeper := routerkeeper.NewKeeper(routerKey, swapKeeper, tokenKeeper, Authority.String())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	return Fixture{
		Token:  tokenKeeper,
		Swap:   swapKeeper,
		Router: routerKeeper,
		Ctx:    ctx,
	}
}
