package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

func TestCalculatePercent(t *testing.T) {
	tests := []struct {
		name    string
		value   int64
		percent uint16
		want    int64
	}{
		{name: "one percent of 10000", value: 10000, percent: types.OnePercent, want: 100},
		{name: "half a percent", value: 10000, percent: 50, want: 50},
		{name: "zero value", value: 0, percent: types.OnePercent, want: 0},
		{name: "zero percent", value: 10000, percent: 0, want: 0},
		{name: "full scale returns whole value", value: 12345, percent: types.Scale, want: 12345},
		{name: "rounds down", value: 99, percent: 1, want: 0},
		{name: "large value stays exact", value: 1_000_000_000_000, percent: 25, want: 2_500_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, types.CalculatePercent(tt.value, tt.percent))
		})
	}
}

func TestCalculatePercentPanicsOnNegativeValue(t *testing.T) {
	require.Panics(t, func() {
		types.CalculatePercent(-1, types.OnePercent)
	})
}

func TestCalculatePercentPanicsOnPercentAboveScale(t *testing.T) {
	require.Panics(t, func() {
		types.CalculatePercent(100, types.Scale+1)
	})
}
