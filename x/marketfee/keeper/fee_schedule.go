package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// EffectiveFeePercent returns the percent that would currently apply to an
// account receiving asset as maker or taker, and whether it came from the dynamic
// tier schedule. It does not mutate any trade-statistic state; use
// RecordTrade for that as part of applying a fill.
func (k Keeper) EffectiveFeePercent(ctx sdk.Context, account types.AccountID, asset types.AssetID, isMaker bool) (percent uint16, wasDynamic bool) {
	cfg, found := k.GetAssetFeeConfig(ctx, asset)
	if !found {
		return 0, false
	}

	if cfg.Flags.Has(types.ChargeDynamicMarketFee) && k.IsDynamicFeeActive(ctx) && cfg.DynamicFees != nil {
		stat, _ := k.GetTradeStatistic(ctx, account, asset)
		volume := decayStatistic(stat, k.GetParams(ctx).SlidingStatisticWindowDays, ctx.BlockTime()).TotalVolume

		tiers := cfg.DynamicFees.TakerTiers
		if isMaker {
			tiers = cfg.DynamicFees.MakerTiers
		}
		return types.LookupTier(tiers, volume), true
	}

	if cfg.Flags.Has(types.ChargeMarketFee) {
		return cfg.MarketFeePercent, false
	}

	return 0, false
}
