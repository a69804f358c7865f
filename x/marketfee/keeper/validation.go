package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// ValidateAndSetAssetFeeConfig enforces the hardfork gate for dynamic fees
// on top of SetAssetFeeConfig's shape validation: an asset cannot turn on
// ChargeDynamicMarketFee before HARDFORK_DYNAMIC_FEE_TIME.
func (k Keeper) ValidateAndSetAssetFeeConfig(ctx sdk.Context, cfg types.AssetFeeConfig) error {
	if cfg.Flags.Has(types.ChargeDynamicMarketFee) && !k.IsDynamicFeeActive(ctx) {
		return types.ErrHardforkNotYetActive.Wrap("dynamic market fees are not yet active")
	}

	if err := k.SetAssetFeeConfig(ctx, cfg); err != nil {
		return err
	}

	_ = ctx.EventManager().EmitTypedEvent(&types.EventAssetFeeConfigSet{
		AssetID: cfg.AssetID.String(),
		Dynamic: cfg.Flags.Has(types.ChargeDynamicMarketFee),
	})

	return nil
}
