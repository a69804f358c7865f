package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

func TestTradeStatisticIsZero(t *testing.T) {
	require.True(t, types.TradeStatistic{}.IsZero())
	require.False(t, types.TradeStatistic{TotalVolume: 1}.IsZero())
}
