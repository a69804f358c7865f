package types

// AssetFlag is a bitset of per-asset fee-charging flags.
type AssetFlag uint32

const (
	// ChargeMarketFee enables the classic, static market fee rate.
	ChargeMarketFee AssetFlag = 1 << 0

	// ChargeDynamicMarketFee enables the dynamic, volume-tiered fee schedule.
	// Mutually informative with ChargeMarketFee but not mutually exclusive in
	// the bitset itself — the Fee Engine prefers the dynamic path when both
	// bits happen to be set and dynamic fees are active at the block time.
	ChargeDynamicMarketFee AssetFlag = 1 << 1
)

// Has reports whether the flag bit f is set.
func (f AssetFlag) Has(bit AssetFlag) bool {
	return f&bit != 0
}

// AssetFeeConfig is the per-asset fee configuration this subsystem owns and
// validates. The base asset object (symbol, precision, issuer, ...) is
// external and referenced only by AssetID.
type AssetFeeConfig struct {
	AssetID AssetID `json:"asset_id"`

	// Flags holds ChargeMarketFee / ChargeDynamicMarketFee.
	Flags AssetFlag `json:"flags"`

	// MarketFeePercent is the classic static rate, used when
	// ChargeMarketFee is set and the dynamic path does not apply
	// (ChargeDynamicMarketFee unset, or dynamic fees not yet active).
	MarketFeePercent uint16 `json:"market_fee_percent"`

	// MaxMarketFee upper-bounds any single collected fee, in share units.
	// Zero means no cap.
	MaxMarketFee int64 `json:"max_market_fee"`

	// DynamicFees is present iff ChargeDynamicMarketFee is set.
	DynamicFees *FeeTable `json:"dynamic_fees,omitempty"`

	// RewardPercent is the percent of a collected fee redirected to the
	// buyer-side registrar's pending reward balance. 0 means no sharing.
	RewardPercent uint16 `json:"reward_percent,omitempty"`

	// WhitelistMarketFeeSharing, if non-empty, restricts reward sharing to
	// these accounts; an empty list means no whitelist restriction (the
	// surrounding system's general referral-sharing rules apply instead).
	WhitelistMarketFeeSharing []AccountID `json:"whitelist_market_fee_sharing,omitempty"`
}

// Validate enforces the mutual requirement between ChargeDynamicMarketFee
// and DynamicFees, the FeeTable invariants when present, and the percent
// bounds on MarketFeePercent / RewardPercent. It does not check the
// hardfork activation gate — that is a keeper-level concern since it
// depends on block time, not on the config value alone.
func (c AssetFeeConfig) Validate() error {
	dynamicFlagSet := c.Flags.Has(ChargeDynamicMarketFee)
	tablePresent := c.DynamicFees != nil

	if dynamicFlagSet != tablePresent {
		return ErrFlagTableMismatch
	}

	if tablePresent {
		if err := c.DynamicFees.Validate(); err != nil {
			return err
		}
	}

	if c.MarketFeePercent > Scale {
		return ErrInvalidFeeTable.Wrap("market_fee_percent exceeds Scale")
	}
	if c.RewardPercent > Scale {
		return ErrInvalidFeeTable.Wrap("reward_percent exceeds Scale")
	}
	if c.MaxMarketFee < 0 {
		return ErrInvalidFeeTable.Wrap("max_market_fee must be non-negative")
	}

	return nil
}

// IsSharingEligible reports whether account is allowed to receive reward
// sharing under this asset's whitelist (an empty whitelist permits anyone).
func (c AssetFeeConfig) IsSharingEligible(account AccountID) bool {
	if len(c.WhitelistMarketFeeSharing) == 0 {
		return true
	}
	for _, a := range c.WhitelistMarketFeeSharing {
		if a == account {
			return true
		}
	}
	return false
}
