package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// ApplyFill charges market fees on both legs of a fill, credits each party's
// net receipt, records traded volume of dynamic-fee assets for future
// dynamic-fee lookups, and
// splits any eligible portion of the collected fee to the receiving party's
// registrar.
func (k Keeper) ApplyFill(ctx sdk.Context, fill types.Fill) (types.FillResult, error) {
	makerLeg, err := k.applyLeg(ctx, fill.Maker, fill.MakerReceives, true)
	if err != nil {
		return types.FillResult{}, err
	}

	takerLeg, err := k.applyLeg(ctx, fill.Taker, fill.TakerReceives, false)
	if err != nil {
		return types.FillResult{}, err
	}

	return types.FillResult{MakerLeg: makerLeg, TakerLeg: takerLeg}, nil
}

// applyLeg charges the fee on a single party's receipt, credits the net
// amount, records the traded volume (dynamic-fee assets only), and splits
// any referral reward.
func (k Keeper) applyLeg(ctx sdk.Context, party types.AccountID, receipt types.Receipt, isMaker bool) (types.LegResult, error) {
	cfg, found := k.GetAssetFeeConfig(ctx, receipt.AssetID)

	leg := types.LegResult{
		Party:   party,
		AssetID: receipt.AssetID,
		Gross:   receipt.Amount,
	}

	chargeable := found && (cfg.Flags.Has(types.ChargeMarketFee) || cfg.Flags.Has(types.ChargeDynamicMarketFee))
	if !chargeable || receipt.Amount == 0 {
		leg.Net = receipt.Amount
		if err := k.balances.CreditBalance(ctx, party, receipt.AssetID, receipt.Amount); err != nil {
			return types.LegResult{}, err
		}
		return leg, nil
	}

	percent, wasDynamic := k.EffectiveFeePercent(ctx, party, receipt.AssetID, isMaker)
	fee := types.CalculatePercent(receipt.Amount, percent)
	if cfg.MaxMarketFee > 0 && fee > cfg.MaxMarketFee {
		fee = cfg.MaxMarketFee
	}
	net := receipt.Amount - fee

	leg.Fee = fee
	leg.Net = net
	leg.Percent = percent
	leg.WasDynamic = wasDynamic

	if err := k.balances.CreditBalance(ctx, party, receipt.AssetID, net); err != nil {
		return types.LegResult{}, err
	}

	if cfg.Flags.Has(types.ChargeDynamicMarketFee) {
		k.RecordTrade(ctx, party, receipt.AssetID, receipt.Amount)
	}

	retained := fee
	if fee > 0 {
		registrar, reward, hasReward := k.splitReward(ctx, cfg, party, receipt.AssetID, fee)
		if hasReward {
			leg.HasReward = true
			leg.Registrar = registrar
			leg.Reward = reward
			retained = fee - reward

			_ = ctx.EventManager().EmitTypedEvent(&types.EventRewardSplit{
				Registrar: registrar.String(),
				AssetID:   receipt.AssetID.String(),
				Reward:    reward,
			})
		}
	}
	k.addAccumulatedFees(ctx, receipt.AssetID, retained)

	_ = ctx.EventManager().EmitTypedEvent(&types.EventFillFeeApplied{
		AccountID: party.String(),
		AssetID:   receipt.AssetID.String(),
		Dynamic:   wasDynamic,
		Percent:   percent,
		Gross:     receipt.Amount,
		Fee:       fee,
		Net:       net,
	})

	return leg, nil
}
