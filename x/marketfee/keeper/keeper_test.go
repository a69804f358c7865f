package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/testutil"
	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

func TestParamsRoundTrip(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})

	require.Equal(t, types.DefaultParams(), k.GetParams(ctx))

	params := types.Params{
		SlidingStatisticWindowDays:  7,
		DynamicFeeActivationTime:    time.Unix(1000, 0).UTC(),
		RewardSharingActivationTime: time.Unix(2000, 0).UTC(),
		MaintenanceIntervalSeconds:  3600,
	}
	require.NoError(t, k.SetParams(ctx, params))
	require.Equal(t, params, k.GetParams(ctx))
}

func TestSetParamsRejectsInvalid(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})
	err := k.SetParams(ctx, types.Params{SlidingStatisticWindowDays: 0})
	require.Error(t, err)
}

func TestIsDynamicFeeActive(t *testing.T) {
	ctx, k := testutil.NewTestKeeper(t, testutil.NoopBalances{}, testutil.NoRegistrar{})

	params := types.DefaultParams()
	params.DynamicFeeActivationTime = ctx.BlockTime().Add(24 * time.Hour)
	require.NoError(t, k.SetParams(ctx, params))
	require.False(t, k.IsDynamicFeeActive(ctx))

	params.DynamicFeeActivationTime = ctx.BlockTime().Add(-24 * time.Hour)
	require.NoError(t, k.SetParams(ctx, params))
	require.True(t, k.IsDynamicFeeActive(ctx))
}
