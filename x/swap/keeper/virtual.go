package keeper

import (
	"context"

	"github.com/goccy/go-json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lockdex-labs/lockdex/x/swap/types"
)

// GetVirtualState returns the lock bookkeeping of an instance.
func (k Keeper) GetVirtualState(ctx context.Context, instance sdk.AccAddress) (types.VirtualState, error) {
	bz := k.getStore(ctx).Get(VirtualStateKey(instance))
	if bz == nil {
		return types.VirtualState{}, types.ErrInstanceNotFound.Wrapf("instance %s", instance)
	}
	var vs types.VirtualState
	if err := json.Unmarshal(bz, &vs); err != nil {
		return types.VirtualState{}, err
	}
	return vs, nil
}

func (k Keeper) setVirtualState(ctx context.Context, instance sdk.AccAddress, vs types.VirtualState) error {
	bz, err := json.Marshal(vs)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(VirtualStateKey(instance), bz)
	return nil
}

// GetLock returns one outstanding lock at an instance.
func (k Keeper) GetLock(ctx context.Context, instance sdk.AccAddress, lockID uint64) (types.Lock, bool) {
	bz := k.getStore(ctx).Get(LockKey(instance, lockID))
	if bz == nil {
		return types.Lock{}, false
	}
	var lock types.Lock
	if err := json.Unmarshal(bz, &lock); err != nil {
		return types.Lock{}, false
	}
	return lock, true
}

func (k Keeper) setLock(ctx context.Context, instance sdk.AccAddress, lock types.Lock) error {
	bz, err := json.Marshal(lock)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(LockKey(instance, lock.ID), bz)
	return nil
}

func (k Keeper) deleteLock(ctx context.Context, instance sdk.AccAddress, lockID uint64) {
	k.getStore(ctx).Delete(LockKey(instance, lockID))
}

// Locks returns every outstanding lock at an instance in id order.
func (k Keeper) Locks(ctx context.Context, instance sdk.AccAddress) []types.Lock {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, LockInstancePrefix(instance))
	defer iterator.Close()

	var locks []types.Lock
	for ; iterator.Valid(); iterator.Next() {
		var lock types.Lock
		if err := json.Unmarshal(iterator.Value(), &lock); err != nil {
			continue
		}
		locks = append(locks, lock)
	}
	return locks
}

// HasLocks reports whether any lock is outstanding at the instance.
func (k Keeper) HasLocks(ctx context.Context, instance sdk.AccAddress) bool {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, LockInstancePrefix(instance))
	defer iterator.Close()
	return iterator.Valid()
}
