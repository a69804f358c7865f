package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// InitGenesis initializes the module's state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, gs *types.GenesisState) error {
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}

	for _, cfg := range gs.AssetFeeConfigs {
		if err := k.SetAssetFeeConfig(ctx, cfg); err != nil {
			return err
		}
	}

	for _, stat := range gs.TradeStatistics {
		k.setTradeStatistic(ctx, stat)
	}

	for _, aa := range gs.AccumulatedFees {
		k.setAccumulatedFees(ctx, aa.AssetID, aa.Amount)
	}

	if !gs.NextMaintenance.IsZero() {
		k.SetNextMaintenanceTime(ctx, gs.NextMaintenance)
	}

	return nil
}

// ExportGenesis exports the module's state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	gs := &types.GenesisState{
		Params: k.GetParams(ctx),
	}

	k.IterateAssetFeeConfigs(ctx, func(cfg types.AssetFeeConfig) bool {
		gs.AssetFeeConfigs = append(gs.AssetFeeConfigs, cfg)
		return false
	})

	k.IterateTradeStatistics(ctx, func(stat types.TradeStatistic) bool {
		gs.TradeStatistics = append(gs.TradeStatistics, stat)
		return false
	})

	k.IterateAssetFeeConfigs(ctx, func(cfg types.AssetFeeConfig) bool {
		amount := k.GetAccumulatedFees(ctx, cfg.AssetID)
		if amount != 0 {
			gs.AccumulatedFees = append(gs.AccumulatedFees, types.AssetAmount{AssetID: cfg.AssetID, Amount: amount})
		}
		return false
	})

	if next, found := k.GetNextMaintenanceTime(ctx); found {
		gs.NextMaintenance = next
	}

	return gs
}
