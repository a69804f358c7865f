package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

func dynamicTable() *types.FeeTable {
	return &types.FeeTable{
		MakerTiers: []types.FeeTier{{ThresholdAmount: 0, Percent: 100}},
		TakerTiers: []types.FeeTier{{ThresholdAmount: 0, Percent: 200}},
	}
}

func TestAssetFeeConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       types.AssetFeeConfig
		expectErr bool
	}{
		{
			name: "static fee only",
			cfg: types.AssetFeeConfig{
				AssetID:          1,
				Flags:            types.ChargeMarketFee,
				MarketFeePercent: 100,
			},
		},
		{
			name: "dynamic fee with table",
			cfg: types.AssetFeeConfig{
				AssetID:     1,
				Flags:       types.ChargeMarketFee | types.ChargeDynamicMarketFee,
				DynamicFees: dynamicTable(),
			},
		},
		{
			name: "dynamic flag without table",
			cfg: types.AssetFeeConfig{
				AssetID: 1,
				Flags:   types.ChargeDynamicMarketFee,
			},
			expectErr: true,
		},
		{
			name: "table present without dynamic flag",
			cfg: types.AssetFeeConfig{
				AssetID:     1,
				Flags:       types.ChargeMarketFee,
				DynamicFees: dynamicTable(),
			},
			expectErr: true,
		},
		{
			name: "market fee percent above scale",
			cfg: types.AssetFeeConfig{
				AssetID:          1,
				Flags:            types.ChargeMarketFee,
				MarketFeePercent: types.Scale + 1,
			},
			expectErr: true,
		},
		{
			name: "negative max market fee",
			cfg: types.AssetFeeConfig{
				AssetID:      1,
				Flags:        types.ChargeMarketFee,
				MaxMarketFee: -1,
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestIsSharingEligible(t *testing.T) {
	cfg := types.AssetFeeConfig{WhitelistMarketFeeSharing: nil}
	require.True(t, cfg.IsSharingEligible(types.AccountID(42)))

	cfg.WhitelistMarketFeeSharing = []types.AccountID{1, 2, 3}
	require.True(t, cfg.IsSharingEligible(types.AccountID(2)))
	require.False(t, cfg.IsSharingEligible(types.AccountID(99)))
}
