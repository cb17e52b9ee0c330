package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

var (
	// InstanceKeyPrefix indexes pool configuration by instance address.
	InstanceKeyPrefix = []byte{0x01}
	// BalanceKeyPrefix indexes deposited token balances by instance and holder.
	BalanceKeyPrefix = []byte{0x02}
	// VirtualStateKeyPrefix indexes virtual reserves and lock bookkeeping by instance.
	VirtualStateKeyPrefix = []byte{0x03}
	// LockKeyPrefix indexes outstanding locks by instance and lock id.
	LockKeyPrefix = []byte{0x04}
	// InstanceSequenceKey holds the counter used to derive instance addresses.
	InstanceSequenceKey = []byte{0x05}
)

func InstanceKey(instance sdk.AccAddress) []byte {
	return append(InstanceKeyPrefix, address.MustLengthPrefix(instance)...)
}

func BalanceKey(instance, holder sdk.AccAddress) []byte {
	key := append(BalanceKeyPrefix, address.MustLengthPrefix(instance)...)
	return append(key, address.MustLengthPrefix(holder)...)
}

func BalanceInstancePrefix(instance sdk.AccAddress) []byte {
	return append(BalanceKeyPrefix, address.MustLengthPrefix(instance)...)
}

func VirtualStateKey(instance sdk.AccAddress) []byte {
	return append(VirtualStateKeyPrefix, address.MustLengthPrefix(instance)...)
}

func LockKey(instance sdk.AccAddress, lockID uint64) []byte {
	key := append(LockKeyPrefix, address.MustLengthPrefix(instance)...)
	id := make([]byte, 8)
	binary.BigEndian.PutUint64(id, lockID)
	return append(key, id...)
}

func LockInstancePrefix(instance sdk.AccAddress) []byte {
	return append(LockKeyPrefix, address.MustLengthPrefix(instance)...)
}
