package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

type msgServer struct {
	keeper Keeper
}

// NewMsgServerImpl returns an implementation of the marketfee MsgServer interface.
func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{keeper: k}
}

var _ types.MsgServer = msgServer{}

// SetAssetFeeConfig handles creating or updating an asset's fee configuration.
func (ms msgServer) SetAssetFeeConfig(goCtx context.Context, msg *types.MsgSetAssetFeeConfig) (*types.MsgSetAssetFeeConfigResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return nil, types.ErrInvalidAddress.Wrap("invalid authority address")
	}

	if err := ms.keeper.ValidateAndSetAssetFeeConfig(ctx, msg.Config); err != nil {
		return nil, err
	}

	return &types.MsgSetAssetFeeConfigResponse{}, nil
}

// UpdateParams handles updating module parameters.
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if msg.Authority != ms.keeper.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("invalid authority; expected %s, got %s", ms.keeper.GetAuthority(), msg.Authority)
	}

	if err := ms.keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
