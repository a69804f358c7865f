package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// GRPCQuerier provides gRPC query capabilities for the marketfee module.
type GRPCQuerier struct {
	Keeper Keeper
}

var _ types.QueryServer = GRPCQuerier{}

// AssetFeeConfig returns a single asset's fee configuration.
func (q GRPCQuerier) AssetFeeConfig(ctx sdk.Context, req *types.QueryAssetFeeConfigRequest) (*types.QueryAssetFeeConfigResponse, error) {
	if req == nil {
		return nil, types.ErrAssetFeeConfigNotFound.Wrap("request cannot be nil")
	}

	cfg, found := q.Keeper.GetAssetFeeConfig(ctx, req.AssetID)
	if !found {
		return nil, types.ErrAssetFeeConfigNotFound.Wrapf("no fee config for %s", req.AssetID)
	}

	return &types.QueryAssetFeeConfigResponse{Config: cfg}, nil
}

// EffectiveFeePercent reports what percent would currently apply to a
// hypothetical receipt, without mutating any state.
func (q GRPCQuerier) EffectiveFeePercent(ctx sdk.Context, req *types.QueryEffectiveFeePercentRequest) (*types.QueryEffectiveFeePercentResponse, error) {
	if req == nil {
		return nil, types.ErrAssetFeeConfigNotFound.Wrap("request cannot be nil")
	}

	percent, wasDynamic := q.Keeper.EffectiveFeePercent(ctx, req.AccountID, req.AssetID, req.IsMaker)
	return &types.QueryEffectiveFeePercentResponse{Percent: percent, WasDynamic: wasDynamic}, nil
}

// TradeStatistic returns an account's rolling volume record for an asset.
func (q GRPCQuerier) TradeStatistic(ctx sdk.Context, req *types.QueryTradeStatisticRequest) (*types.QueryTradeStatisticResponse, error) {
	if req == nil {
		return nil, types.ErrAssetFeeConfigNotFound.Wrap("request cannot be nil")
	}

	stat, _ := q.Keeper.GetTradeStatistic(ctx, req.AccountID, req.AssetID)
	return &types.QueryTradeStatisticResponse{Statistic: stat}, nil
}

// AccumulatedFees returns the accumulated-fees counter for an asset.
func (q GRPCQuerier) AccumulatedFees(ctx sdk.Context, req *types.QueryAccumulatedFeesRequest) (*types.QueryAccumulatedFeesResponse, error) {
	if req == nil {
		return nil, types.ErrAssetFeeConfigNotFound.Wrap("request cannot be nil")
	}

	return &types.QueryAccumulatedFeesResponse{Amount: q.Keeper.GetAccumulatedFees(ctx, req.AssetID)}, nil
}

// Params returns the module parameters.
func (q GRPCQuerier) Params(ctx sdk.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: q.Keeper.GetParams(ctx)}, nil
}
