package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// AssetFeeProvider is the narrow surface this module needs from the host
// chain's asset/balance bookkeeping. The order book, the asset registry, and
// account balances themselves live in other modules; the Fee Engine only
// ever needs to credit a net amount to a receiving account. The per-asset
// accumulated-fees counter is kept by this module's own keeper.
type AssetFeeProvider interface {
	// CreditBalance credits amount of asset to account's balance.
	CreditBalance(ctx sdk.Context, account AccountID, asset AssetID, amount int64) error
}

// RegistrarProvider is the narrow surface this module needs from the host
// chain's account/referral bookkeeping to perform reward splitting.
// Account and referral registration are out of scope for this subsystem;
// this module only ever needs to ask "who is P's registrar, and are they
// eligible for sharing" and then credit a pending reward balance.
type RegistrarProvider interface {
	// GetRegistrar returns the registrar account for receiver, and whether
	// that registrar is currently eligible for market-fee sharing under the
	// surrounding system's membership rules. found is false if receiver has
	// no registrar at all.
	GetRegistrar(ctx sdk.Context, receiver AccountID) (registrar AccountID, eligible bool, found bool)

	// CreditPendingMarketFeeReward accrues amount of asset to registrar's
	// pending (not-yet-vested) market-fee reward balance.
	CreditPendingMarketFeeReward(ctx sdk.Context, registrar AccountID, asset AssetID, amount int64) error
}
