package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

const validBech32 = "cosmos10d07y265gmmuvt4z0w9aw880jnsr700j6zn9kn"

func TestMsgSetAssetFeeConfigValidateBasic(t *testing.T) {
	validCfg := types.AssetFeeConfig{AssetID: 1, Flags: types.ChargeMarketFee, MarketFeePercent: 100}

	tests := []struct {
		name      string
		msg       types.MsgSetAssetFeeConfig
		expectErr bool
	}{
		{
			name: "valid",
			msg:  types.MsgSetAssetFeeConfig{Authority: validBech32, Config: validCfg},
		},
		{
			name:      "invalid authority",
			msg:       types.MsgSetAssetFeeConfig{Authority: "not-an-address", Config: validCfg},
			expectErr: true,
		},
		{
			name: "invalid config",
			msg: types.MsgSetAssetFeeConfig{
				Authority: validBech32,
				Config:    types.AssetFeeConfig{AssetID: 1, Flags: types.ChargeDynamicMarketFee},
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgSetAssetFeeConfigGetSigners(t *testing.T) {
	msg := types.MsgSetAssetFeeConfig{Authority: validBech32}
	addr, err := sdk.AccAddressFromBech32(validBech32)
	require.NoError(t, err)
	require.Equal(t, []sdk.AccAddress{addr}, msg.GetSigners())
}

func TestMsgUpdateParamsValidateBasic(t *testing.T) {
	tests := []struct {
		name      string
		msg       types.MsgUpdateParams
		expectErr bool
	}{
		{
			name: "valid",
			msg:  types.MsgUpdateParams{Authority: validBech32, Params: types.DefaultParams()},
		},
		{
			name:      "invalid authority",
			msg:       types.MsgUpdateParams{Authority: "bad", Params: types.DefaultParams()},
			expectErr: true,
		},
		{
			name: "invalid params",
			msg: types.MsgUpdateParams{
				Authority: validBech32,
				Params:    types.Params{SlidingStatisticWindowDays: 0},
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
