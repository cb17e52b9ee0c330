package types

import (
	"cosmossdk.io/errors"
)

var (
	ErrEmptyRoute              = errors.Register(ModuleName, 1, "route has no hops")
	ErrRouteLengthExceeded     = errors.Register(ModuleName, 2, "route exceeds maximum length")
	ErrUnknownSwapAddress      = errors.Register(ModuleName, 3, "swap address not registered")
	ErrTokenMismatchAtHop      = errors.Register(ModuleName, 4, "hop does not trade the incoming token")
	ErrOutputTokenMismatch     = errors.Register(ModuleName, 5, "route does not end in the requested token")
	ErrCouldNotAcquireAllLocks = errors.Register(ModuleName, 6, "could not acquire all locks in route")
	ErrRouteExecutionFailed    = errors.Register(ModuleName, 7, "route execution failed after locks were acquired")
	ErrUnauthorized            = errors.Register(ModuleName, 8, "caller is not the router authority")
	ErrContractExists          = errors.Register(ModuleName, 9, "swap contract already registered")
	ErrUnknownRoute            = errors.Register(ModuleName, 10, "unknown route")
	ErrInvalidAmount           = errors.Register(ModuleName, 11, "invalid amount")
)
