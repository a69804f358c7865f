package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/testutil"
	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

func TestRecordTradeFirstTrade(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})

	stat := k.RecordTrade(ctx, types.AccountID(1), types.AssetID(2), 20)
	require.Equal(t, int64(20), stat.TotalVolume)
	require.Equal(t, uint32(0), stat.DecayedWindows)
	require.Equal(t, ctx.BlockTime().Unix(), stat.FirstTradeDate.Unix())
}

func TestRecordTradeAccumulatesWithinWindow(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})

	k.RecordTrade(ctx, types.AccountID(1), types.AssetID(2), 20)
	stat := k.RecordTrade(ctx, types.AccountID(1), types.AssetID(2), 15)
	require.Equal(t, int64(35), stat.TotalVolume)
}

// TestDecayPassMatchesWorkedExamples reproduces the two worked examples: a
// 30-day sliding window decays volume 20 to 19 after one elapsed window and
// 18 after two, and volume 60 to 58 then 56, using ceiling division applied
// once per elapsed window.
func TestDecayPassMatchesWorkedExamples(t *testing.T) {
	tests := []struct {
		name        string
		startVolume int64
		elapsedDays int
		wantVolume  int64
		wantDecayed uint32
	}{
		{name: "volume 20, one window", startVolume: 20, elapsedDays: 30, wantVolume: 19, wantDecayed: 1},
		{name: "volume 20, two windows", startVolume: 20, elapsedDays: 60, wantVolume: 18, wantDecayed: 2},
		{name: "volume 60, one window", startVolume: 60, elapsedDays: 30, wantVolume: 58, wantDecayed: 1},
		{name: "volume 60, two windows", startVolume: 60, elapsedDays: 60, wantVolume: 56, wantDecayed: 2},
		{name: "no elapsed window leaves volume unchanged", startVolume: 20, elapsedDays: 10, wantVolume: 20, wantDecayed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})

			start := ctx.BlockTime()
			k.RecordTrade(ctx.WithBlockTime(start), types.AccountID(1), types.AssetID(2), tt.startVolume)

			later := start.Add(time.Duration(tt.elapsedDays) * 24 * time.Hour)
			touched := k.DecayPass(ctx.WithBlockTime(later))

			stat, _ := k.GetTradeStatistic(ctx, types.AccountID(1), types.AssetID(2))
			require.Equal(t, tt.wantVolume, stat.TotalVolume)
			require.Equal(t, tt.wantDecayed, stat.DecayedWindows)

			if tt.wantDecayed > 0 {
				require.Equal(t, uint32(1), touched)
			} else {
				require.Equal(t, uint32(0), touched)
			}
		})
	}
}

func TestDecayPassIsIdempotentWithinTheSameWindow(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})

	start := ctx.BlockTime()
	k.RecordTrade(ctx.WithBlockTime(start), types.AccountID(1), types.AssetID(2), 20)

	later := start.Add(30 * 24 * time.Hour)
	k.DecayPass(ctx.WithBlockTime(later))
	touchedAgain := k.DecayPass(ctx.WithBlockTime(later.Add(time.Hour)))

	require.Equal(t, uint32(0), touchedAgain)

	stat, _ := k.GetTradeStatistic(ctx, types.AccountID(1), types.AssetID(2))
	require.Equal(t, int64(19), stat.TotalVolume)
}

func TestRecordTradeAppliesLazyDecayBeforeAdding(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})

	start := ctx.BlockTime()
	k.RecordTrade(ctx.WithBlockTime(start), types.AccountID(1), types.AssetID(2), 20)

	later := start.Add(30 * 24 * time.Hour)
	stat := k.RecordTrade(ctx.WithBlockTime(later), types.AccountID(1), types.AssetID(2), 5)

	// 20 decays to 19 over the elapsed window, then 5 more is added.
	require.Equal(t, int64(24), stat.TotalVolume)
	require.Equal(t, uint32(1), stat.DecayedWindows)
}
