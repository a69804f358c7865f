package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// splitReward routes cfg.RewardPercent of a collected fee to the receiving
// party's registrar, if reward sharing is hardfork-active, the asset config
// has a nonzero reward percent, the party has a registrar, and that
// registrar is on the asset's sharing whitelist. It returns found=false if
// no split was made, in which case the caller retains the full fee.
func (k Keeper) splitReward(ctx sdk.Context, cfg types.AssetFeeConfig, party types.AccountID, asset types.AssetID, fee int64) (registrar types.AccountID, reward int64, found bool) {
	if cfg.RewardPercent == 0 || !k.IsRewardSharingActive(ctx) {
		return 0, 0, false
	}

	reg, eligible, hasRegistrar := k.registrars.GetRegistrar(ctx, party)
	if !hasRegistrar || !eligible || !cfg.IsSharingEligible(reg) {
		return 0, 0, false
	}

	reward = types.CalculatePercent(fee, cfg.RewardPercent)
	if reward == 0 {
		return 0, 0, false
	}

	if err := k.registrars.CreditPendingMarketFeeReward(ctx, reg, asset, reward); err != nil {
		k.Logger(ctx).Error("failed to credit market fee reward", "registrar", reg, "asset", asset, "err", err)
		return 0, 0, false
	}

	return reg, reward, true
}
