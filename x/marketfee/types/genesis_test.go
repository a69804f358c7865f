package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

func TestDefaultGenesisStateIsValid(t *testing.T) {
	require.NoError(t, types.DefaultGenesisState().Validate())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name      string
		params    types.Params
		expectErr bool
	}{
		{name: "defaults", params: types.DefaultParams()},
		{
			name: "zero window",
			params: types.Params{
				SlidingStatisticWindowDays: 0,
				MaintenanceIntervalSeconds: 86400,
			},
			expectErr: true,
		},
		{
			name: "zero maintenance interval",
			params: types.Params{
				SlidingStatisticWindowDays: 30,
				MaintenanceIntervalSeconds: 0,
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGenesisStateValidateDuplicateAssetConfig(t *testing.T) {
	cfg := types.AssetFeeConfig{AssetID: 1, Flags: types.ChargeMarketFee, MarketFeePercent: 100}
	gs := types.GenesisState{
		Params:          types.DefaultParams(),
		AssetFeeConfigs: []types.AssetFeeConfig{cfg, cfg},
	}
	require.Error(t, gs.Validate())
}

func TestGenesisStateValidateDuplicateTradeStatistic(t *testing.T) {
	stat := types.TradeStatistic{AccountID: 1, AssetID: 2, TotalVolume: 10, FirstTradeDate: time.Unix(0, 0)}
	gs := types.GenesisState{
		Params:          types.DefaultParams(),
		TradeStatistics: []types.TradeStatistic{stat, stat},
	}
	require.Error(t, gs.Validate())
}

func TestGenesisStateValidateNegativeVolume(t *testing.T) {
	gs := types.GenesisState{
		Params:          types.DefaultParams(),
		TradeStatistics: []types.TradeStatistic{{AccountID: 1, AssetID: 2, TotalVolume: -1}},
	}
	require.Error(t, gs.Validate())
}
