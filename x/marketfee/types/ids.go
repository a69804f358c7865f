package types

import "fmt"

// AssetID is an opaque, stable identifier for an asset. Account and asset
// registration live outside this subsystem; a monotonic instance number is
// sufficient here, the same way the upstream object stores reference
// accounts and assets purely by id.
type AssetID uint64

// String renders the id for logging and event attributes.
func (a AssetID) String() string {
	return fmt.Sprintf("asset-%d", uint64(a))
}

// AccountID is an opaque, stable identifier for an account.
type AccountID uint64

// String renders the id for logging and event attributes.
func (a AccountID) String() string {
	return fmt.Sprintf("account-%d", uint64(a))
}
