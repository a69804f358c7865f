package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/testutil"
	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

func TestInitAndExportGenesisRoundTrip(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})

	gs := &types.GenesisState{
		Params: types.Params{
			SlidingStatisticWindowDays:  30,
			DynamicFeeActivationTime:    time.Unix(0, 0).UTC(),
			RewardSharingActivationTime: time.Unix(0, 0).UTC(),
			MaintenanceIntervalSeconds:  86400,
		},
		AssetFeeConfigs: []types.AssetFeeConfig{
			{AssetID: 1, Flags: types.ChargeMarketFee, MarketFeePercent: 100},
		},
		TradeStatistics: []types.TradeStatistic{
			{AccountID: 1, AssetID: 1, TotalVolume: 500, FirstTradeDate: time.Unix(1000, 0).UTC()},
		},
		AccumulatedFees: []types.AssetAmount{
			{AssetID: 1, Amount: 42},
		},
		NextMaintenance: time.Unix(86400, 0).UTC(),
	}

	require.NoError(t, k.InitGenesis(ctx, gs))

	exported := k.ExportGenesis(ctx)
	require.Equal(t, gs.Params, exported.Params)
	require.Equal(t, gs.AssetFeeConfigs, exported.AssetFeeConfigs)
	require.Equal(t, gs.TradeStatistics, exported.TradeStatistics)
	require.Equal(t, gs.AccumulatedFees, exported.AccumulatedFees)
	require.Equal(t, gs.NextMaintenance.Unix(), exported.NextMaintenance.Unix())
}
