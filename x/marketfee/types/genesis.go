package types

import "time"

// GenesisState is the genesis state for the marketfee module.
type GenesisState struct {
	Params           Params           `json:"params"`
	AssetFeeConfigs  []AssetFeeConfig `json:"asset_fee_configs,omitempty"`
	TradeStatistics  []TradeStatistic `json:"trade_statistics,omitempty"`
	AccumulatedFees  []AssetAmount    `json:"accumulated_fees,omitempty"`
	NextMaintenance  time.Time        `json:"next_maintenance_time"`
}

// AssetAmount pairs an asset with an int64 amount; used for the
// AccumulatedFees genesis export/import since it is stored as a bare
// per-asset counter rather than a structured record.
type AssetAmount struct {
	AssetID AssetID `json:"asset_id"`
	Amount  int64   `json:"amount"`
}

// Params holds the chain-wide protocol constants for the module.
type Params struct {
	// SlidingStatisticWindowDays is the width W, in days, of the rolling
	// volume window the decay pass uses (default 30).
	SlidingStatisticWindowDays uint32 `json:"sliding_statistic_window_days"`

	// DynamicFeeActivationTime is HARDFORK_DYNAMIC_FEE_TIME.
	DynamicFeeActivationTime time.Time `json:"dynamic_fee_activation_time"`

	// RewardSharingActivationTime is HARDFORK_REWARD_SHARING_TIME.
	RewardSharingActivationTime time.Time `json:"reward_sharing_activation_time"`

	// MaintenanceIntervalSeconds is the spacing between maintenance ticks,
	// typically one per day.
	MaintenanceIntervalSeconds uint32 `json:"maintenance_interval_seconds"`
}

// DefaultGenesisState returns the default genesis state.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// DefaultParams returns the default module parameters: a 30-day sliding
// window and both hardfork gates already activated (time zero), matching
// an already-active chain.
func DefaultParams() Params {
	return Params{
		SlidingStatisticWindowDays: 30,
		DynamicFeeActivationTime:   time.Unix(0, 0).UTC(),
		RewardSharingActivationTime: time.Unix(0, 0).UTC(),
		MaintenanceIntervalSeconds: 86400,
	}
}

// Validate validates the module parameters.
func (p Params) Validate() error {
	if p.SlidingStatisticWindowDays == 0 {
		return ErrInvalidParams.Wrap("sliding_statistic_window_days must be greater than 0")
	}
	if p.MaintenanceIntervalSeconds == 0 {
		return ErrInvalidParams.Wrap("maintenance_interval_seconds must be greater than 0")
	}
	return nil
}

// Validate validates the genesis state.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenAssets := make(map[AssetID]bool)
	for _, cfg := range gs.AssetFeeConfigs {
		if err := cfg.Validate(); err != nil {
			return err
		}
		if seenAssets[cfg.AssetID] {
			return ErrInvalidFeeTable.Wrapf("duplicate asset fee config for %s", cfg.AssetID)
		}
		seenAssets[cfg.AssetID] = true
	}

	seenStats := make(map[AccountID]map[AssetID]bool)
	for _, stat := range gs.TradeStatistics {
		if stat.TotalVolume < 0 {
			return ErrInvalidParams.Wrapf("negative total_volume for %s/%s", stat.AccountID, stat.AssetID)
		}
		if seenStats[stat.AccountID] == nil {
			seenStats[stat.AccountID] = make(map[AssetID]bool)
		}
		if seenStats[stat.AccountID][stat.AssetID] {
			return ErrInvalidParams.Wrapf("duplicate trade statistic for %s/%s", stat.AccountID, stat.AssetID)
		}
		seenStats[stat.AccountID][stat.AssetID] = true
	}

	return nil
}
