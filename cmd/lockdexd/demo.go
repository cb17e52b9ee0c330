package main

import (
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	routerkeeper "github.com/lockdex-labs/lockdex/x/router/keeper"
	routertypes "github.com/lockdex-labs/lockdex/x/router/types"
	swapkeeper "github.com/lockdex-labs/lockdex/x/swap/keeper"
	swaptypes "github.com/lockdex-labs/lockdex/x/swap/types"
	tokenkeeper "github.com/lockdex-labs/lockdex/x/token/keeper"
	tokentypes "github.com/lockdex-labs/lockdex/x/token/types"
)

// demoCmd runs a scripted three-hop route swap against in-memory state:
// three tokens, three pools, liquidity, then one RouteSwap end to end.
func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted multi-hop route swap against in-memory state",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetEnvPrefix("LOCKDEX")
			v.AutomaticEnv()
			v.SetDefault("fee_per_mille", 3)
			v.SetDefault("pool_depth", "1000000000")
			v.SetDefault("swap_amount", "1000000")

			feePerMille := cast.ToUint16(v.Get("fee_per_mille"))
			poolDepth, ok := math.NewIntFromString(cast.ToString(v.Get("pool_depth")))
			if !ok {
				return fmt.Errorf("invalid pool_depth %q", v.Get("pool_depth"))
			}
			swapAmount, ok := math.NewIntFromString(cast.ToString(v.Get("swap_amount")))
			if !ok {
				return fmt.Errorf("invalid swap_amount %q", v.Get("swap_amount"))
			}

			return runDemo(cmd, feePerMille, poolDepth, swapAmount)
		},
	}
	return cmd
}

func runDemo(cmd *cobra.Command, feePerMille uint16, poolDepth, swapAmount math.Int) error {
	logger := log.NewLogger(cmd.OutOrStdout())

	tokenKey := storetypes.NewKVStoreKey(tokentypes.StoreKey)
	swapKey := storetypes.NewKVStoreKey(swaptypes.StoreKey)
	routerKey := storetypes.NewKVStoreKey(routertypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, logger, storemetrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(tokenKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(swapKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(routerKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		return err
	}

	tokens := tokenkeeper.NewKeeper(tokenKey)
	swaps := swapkeeper.NewKeeper(swapKey, tokens)
	operator := sdk.AccAddress("demo-operator-------")
	trader := sdk.AccAddress("demo-trader---------")
	router := routerkeeper.NewKeeper(routerKey, swaps, tokens, operator.String())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, logger)

	supply := poolDepth.MulRaw(10)
	denoms := []string{"alpha", "beta", "gamma", "delta"}
	for _, denom := range denoms {
		if err := tokens.CreateToken(ctx, denom, denom, denom, 6, supply, operator); err != nil {
			return err
		}
	}
	if err := tokens.Transfer(ctx, "alpha", operator, trader, swapAmount); err != nil {
		return err
	}

	// One pool per adjacent pair: alpha/beta, beta/gamma, gamma/delta.
	var route []string
	for i := 0; i+1 < len(denoms); i++ {
		instance, err := swaps.CreateSwapInstance(ctx, denoms[i], denoms[i+1], feePerMille)
		if err != nil {
			return err
		}
		for _, denom := range []string{denoms[i], denoms[i+1]} {
			if err := tokens.Approve(ctx, denom, operator, instance, poolDepth); err != nil {
				return err
			}
			if err := swaps.Deposit(ctx, instance, operator, denom, poolDepth); err != nil {
				return err
			}
		}
		if _, err := swaps.ProvideInitialLiquidity(ctx, instance, operator, poolDepth, poolDepth); err != nil {
			return err
		}
		if err := router.RegisterSwapContract(ctx, operator, instance.String(), denoms[i], denoms[i+1]); err != nil {
			return err
		}
		route = append(route, instance.String())
		logger.Info("pool ready", "instance", instance.String(), "pair", denoms[i]+"/"+denoms[i+1])
	}

	if err := tokens.Approve(ctx, "alpha", trader, routerkeeper.ModuleAddress, swapAmount); err != nil {
		return err
	}
	out, err := router.RouteSwap(ctx, trader, route, "alpha", "delta", swapAmount, math.OneInt())
	if err != nil {
		return err
	}
	logger.Info("route settled",
		"amount_in", swapAmount.String(), "amount_out", out.String(),
		"trader_delta", tokens.GetBalance(ctx, "delta", trader).String())
	return nil
}
