package keeper

import (
	"context"

	"github.com/goccy/go-json"

	storetypes "cosmossdk.io/store/types"

	"github.com/lockdex-labs/lockdex/x/router/types"
)

func (k Keeper) getRoute(ctx context.Context, routeID uint64) (types.ActiveRoute, bool) {
	bz := k.getStore(ctx).Get(RouteKey(routeID))
	if bz == nil {
		return types.ActiveRoute{}, false
	}
	var route types.ActiveRoute
	if err := json.Unmarshal(bz, &route); err != nil {
		return types.ActiveRoute{}, false
	}
	return route, true
}

func (k Keeper) setRoute(ctx context.Context, route types.ActiveRoute) error {
	bz, err := json.Marshal(route)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(RouteKey(route.ID), bz)
	return nil
}

func (k Keeper) deleteRoute(ctx context.Context, routeID uint64) {
	k.getStore(ctx).Delete(RouteKey(routeID))
}

// ActiveRoutes returns every in-flight route in id order.
func (k Keeper) ActiveRoutes(ctx context.Context) []types.ActiveRoute {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RouteKeyPrefix)
	defer iterator.Close()

	var routes []types.ActiveRoute
	for ; iterator.Valid(); iterator.Next() {
		var route types.ActiveRoute
		if err := json.Unmarshal(iterator.Value(), &route); err != nil {
			continue
		}
		routes = append(routes, route)
	}
	return routes
}
