package keeper

import (
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// feeTierStore is the stored format of a types.FeeTier.
type feeTierStore struct {
	ThresholdAmount int64  `json:"threshold_amount"`
	Percent         uint16 `json:"percent"`
}

// assetFeeConfigStore is the stored format of a types.AssetFeeConfig.
type assetFeeConfigStore struct {
	AssetID                   uint64         `json:"asset_id"`
	Flags                     uint32         `json:"flags"`
	MarketFeePercent          uint16         `json:"market_fee_percent"`
	MaxMarketFee              int64          `json:"max_market_fee"`
	MakerTiers                []feeTierStore `json:"maker_tiers,omitempty"`
	TakerTiers                []feeTierStore `json:"taker_tiers,omitempty"`
	RewardPercent             uint16         `json:"reward_percent"`
	WhitelistMarketFeeSharing []uint64       `json:"whitelist_market_fee_sharing,omitempty"`
}

func toTierStore(tiers []types.FeeTier) []feeTierStore {
	if tiers == nil {
		return nil
	}
	out := make([]feeTierStore, len(tiers))
	for i, t := range tiers {
		out[i] = feeTierStore{ThresholdAmount: t.ThresholdAmount, Percent: t.Percent}
	}
	return out
}

func fromTierStore(tiers []feeTierStore) []types.FeeTier {
	if tiers == nil {
		return nil
	}
	out := make([]types.FeeTier, len(tiers))
	for i, t := range tiers {
		out[i] = types.FeeTier{ThresholdAmount: t.ThresholdAmount, Percent: t.Percent}
	}
	return out
}

func configToStore(cfg types.AssetFeeConfig) assetFeeConfigStore {
	cs := assetFeeConfigStore{
		AssetID:          uint64(cfg.AssetID),
		Flags:            uint32(cfg.Flags),
		MarketFeePercent: cfg.MarketFeePercent,
		MaxMarketFee:     cfg.MaxMarketFee,
		RewardPercent:    cfg.RewardPercent,
	}
	if cfg.DynamicFees != nil {
		cs.MakerTiers = toTierStore(cfg.DynamicFees.MakerTiers)
		cs.TakerTiers = toTierStore(cfg.DynamicFees.TakerTiers)
	}
	for _, acc := range cfg.WhitelistMarketFeeSharing {
		cs.WhitelistMarketFeeSharing = append(cs.WhitelistMarketFeeSharing, uint64(acc))
	}
	return cs
}

func storeToConfig(cs assetFeeConfigStore) types.AssetFeeConfig {
	cfg := types.AssetFeeConfig{
		AssetID:          types.AssetID(cs.AssetID),
		Flags:            types.AssetFlag(cs.Flags),
		MarketFeePercent: cs.MarketFeePercent,
		MaxMarketFee:     cs.MaxMarketFee,
		RewardPercent:    cs.RewardPercent,
	}
	if cs.MakerTiers != nil || cs.TakerTiers != nil {
		cfg.DynamicFees = &types.FeeTable{
			MakerTiers: fromTierStore(cs.MakerTiers),
			TakerTiers: fromTierStore(cs.TakerTiers),
		}
	}
	for _, acc := range cs.WhitelistMarketFeeSharing {
		cfg.WhitelistMarketFeeSharing = append(cfg.WhitelistMarketFeeSharing, types.AccountID(acc))
	}
	return cfg
}

// SetAssetFeeConfig validates and stores an asset's fee configuration.
// Callers that enforce the dynamic-fee hardfork gate must do so before
// calling this; SetAssetFeeConfig only enforces shape invariants.
func (k Keeper) SetAssetFeeConfig(ctx sdk.Context, cfg types.AssetFeeConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(configToStore(cfg))
	if err != nil {
		return err
	}

	store := ctx.KVStore(k.skey)
	store.Set(types.AssetFeeConfigKey(cfg.AssetID), bz)
	return nil
}

// GetAssetFeeConfig returns the fee configuration for an asset.
func (k Keeper) GetAssetFeeConfig(ctx sdk.Context, asset types.AssetID) (types.AssetFeeConfig, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.AssetFeeConfigKey(asset))
	if bz == nil {
		return types.AssetFeeConfig{}, false
	}

	var cs assetFeeConfigStore
	if err := json.Unmarshal(bz, &cs); err != nil {
		return types.AssetFeeConfig{}, false
	}
	return storeToConfig(cs), true
}

// IterateAssetFeeConfigs iterates over every stored asset fee configuration,
// stopping early if fn returns true.
func (k Keeper) IterateAssetFeeConfigs(ctx sdk.Context, fn func(cfg types.AssetFeeConfig) bool) {
	store := ctx.KVStore(k.skey)
	iter := storetypes.KVStorePrefixIterator(store, types.AssetFeeConfigPrefixKey())
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		var cs assetFeeConfigStore
		if err := json.Unmarshal(iter.Value(), &cs); err != nil {
			continue
		}
		if fn(storeToConfig(cs)) {
			break
		}
	}
}
