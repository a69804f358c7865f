package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/testutil"
	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

func TestAssetFeeConfigRoundTrip(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})

	cfg := types.AssetFeeConfig{
		AssetID:          5,
		Flags:            types.ChargeMarketFee | types.ChargeDynamicMarketFee,
		MarketFeePercent: 100,
		MaxMarketFee:     1000,
		DynamicFees: &types.FeeTable{
			MakerTiers: []types.FeeTier{{ThresholdAmount: 0, Percent: 100}, {ThresholdAmount: 100, Percent: 50}},
			TakerTiers: []types.FeeTier{{ThresholdAmount: 0, Percent: 200}},
		},
		RewardPercent:             20,
		WhitelistMarketFeeSharing: []types.AccountID{7, 8},
	}

	require.NoError(t, k.SetAssetFeeConfig(ctx, cfg))

	got, found := k.GetAssetFeeConfig(ctx, 5)
	require.True(t, found)
	require.Equal(t, cfg, got)
}

func TestGetAssetFeeConfigNotFound(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})
	_, found := k.GetAssetFeeConfig(ctx, 999)
	require.False(t, found)
}

func TestSetAssetFeeConfigRejectsInvalid(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})
	err := k.SetAssetFeeConfig(ctx, types.AssetFeeConfig{AssetID: 1, Flags: types.ChargeDynamicMarketFee})
	require.Error(t, err)
}

func TestIterateAssetFeeConfigs(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})

	require.NoError(t, k.SetAssetFeeConfig(ctx, types.AssetFeeConfig{AssetID: 1, Flags: types.ChargeMarketFee, MarketFeePercent: 10}))
	require.NoError(t, k.SetAssetFeeConfig(ctx, types.AssetFeeConfig{AssetID: 2, Flags: types.ChargeMarketFee, MarketFeePercent: 20}))

	var seen []types.AssetID
	k.IterateAssetFeeConfigs(ctx, func(cfg types.AssetFeeConfig) bool {
		seen = append(seen, cfg.AssetID)
		return false
	})
	require.ElementsMatch(t, []types.AssetID{1, 2}, seen)
}
