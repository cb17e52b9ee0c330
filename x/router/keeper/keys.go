package keeper

import (
	"encoding/binary"
)

var (
	// ContractKeyPrefix indexes directory entries by swap instance address.
	ContractKeyPrefix = []byte{0x01}
	// RouteKeyPrefix indexes in-flight routes by route id.
	RouteKeyPrefix = []byte{0x02}
	// NextRouteIDKey holds the monotonic route id counter.
	NextRouteIDKey = []byte{0x03}
)

func ContractKey(swapAddress string) []byte {
	return append(ContractKeyPrefix, []byte(swapAddress)...)
}

func RouteKey(routeID uint64) []byte {
	id := make([]byte, 8)
	binary.BigEndian.PutUint64(id, routeID)
	return append(RouteKeyPrefix, id...)
}
