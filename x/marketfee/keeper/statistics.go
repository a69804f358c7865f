package keeper

import (
	"encoding/json"
	"time"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// tradeStatisticStore is the stored format of a types.TradeStatistic.
type tradeStatisticStore struct {
	AccountID      uint64 `json:"account_id"`
	AssetID        uint64 `json:"asset_id"`
	TotalVolume    int64  `json:"total_volume"`
	FirstTradeDate int64  `json:"first_trade_date"`
	DecayedWindows uint32 `json:"decayed_windows"`
}

func statToStore(s types.TradeStatistic) tradeStatisticStore {
	return tradeStatisticStore{
		AccountID:      uint64(s.AccountID),
		AssetID:        uint64(s.AssetID),
		TotalVolume:    s.TotalVolume,
		FirstTradeDate: s.FirstTradeDate.Unix(),
		DecayedWindows: s.DecayedWindows,
	}
}

func storeToStat(s tradeStatisticStore) types.TradeStatistic {
	return types.TradeStatistic{
		AccountID:      types.AccountID(s.AccountID),
		AssetID:        types.AssetID(s.AssetID),
		TotalVolume:    s.TotalVolume,
		FirstTradeDate: time.Unix(s.FirstTradeDate, 0).UTC(),
		DecayedWindows: s.DecayedWindows,
	}
}

// GetTradeStatistic returns an account's rolling volume record for an asset.
// If the pair has never traded, found is false and the returned record has
// only AccountID and AssetID set (zero volume, zero FirstTradeDate).
func (k Keeper) GetTradeStatistic(ctx sdk.Context, account types.AccountID, asset types.AssetID) (types.TradeStatistic, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.TradeStatisticKey(account, asset))
	if bz == nil {
		return types.TradeStatistic{AccountID: account, AssetID: asset}, false
	}

	var ss tradeStatisticStore
	if err := json.Unmarshal(bz, &ss); err != nil {
		return types.TradeStatistic{AccountID: account, AssetID: asset}, false
	}
	return storeToStat(ss), true
}

func (k Keeper) setTradeStatistic(ctx sdk.Context, s types.TradeStatistic) {
	bz, err := json.Marshal(statToStore(s))
	if err != nil {
		return
	}
	store := ctx.KVStore(k.skey)
	store.Set(types.TradeStatisticKey(s.AccountID, s.AssetID), bz)
}

// IterateTradeStatistics iterates over every stored trade statistic in
// deterministic (account_id, asset_id) order, stopping early if fn returns
// true.
func (k Keeper) IterateTradeStatistics(ctx sdk.Context, fn func(s types.TradeStatistic) bool) {
	store := ctx.KVStore(k.skey)
	iter := storetypes.KVStorePrefixIterator(store, types.TradeStatisticPrefixKey())
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		var ss tradeStatisticStore
		if err := json.Unmarshal(iter.Value(), &ss); err != nil {
			continue
		}
		if fn(storeToStat(ss)) {
			break
		}
	}
}

// RecordTrade adds amount to account's rolling volume for asset, decaying any
// windows that elapsed since the record was last touched before adding. A
// first-ever trade for the pair starts the window clock at the current block
// time and records the raw amount.
func (k Keeper) RecordTrade(ctx sdk.Context, account types.AccountID, asset types.AssetID, amount int64) types.TradeStatistic {
	windowDays := k.GetParams(ctx).SlidingStatisticWindowDays

	stat, found := k.GetTradeStatistic(ctx, account, asset)
	if !found {
		stat = types.TradeStatistic{
			AccountID:      account,
			AssetID:        asset,
			TotalVolume:    amount,
			FirstTradeDate: ctx.BlockTime(),
			DecayedWindows: 0,
		}
		k.setTradeStatistic(ctx, stat)
		return stat
	}

	stat = decayStatistic(stat, windowDays, ctx.BlockTime())
	stat.TotalVolume += amount
	k.setTradeStatistic(ctx, stat)
	return stat
}

// decayStatistic applies every sliding-window decay pass that elapsed
// between stat's last-known state and now. Each pass subtracts
// ceil(total_volume / windowDays) from total_volume.
//
// A naive floor(total_volume / W) decrement does not reproduce the intended
// transitions for small volumes relative to the window (a volume of 20 under
// a 30-day window would never decay at all). Subtracting ceil(volume/W) each
// pass instead gives volume 20 -> 19 -> 18 and volume 60 -> 58 -> 56 under a
// 30-day window, which is what this keeper implements.
func decayStatistic(stat types.TradeStatistic, windowDays uint32, now time.Time) types.TradeStatistic {
	if windowDays == 0 || stat.TotalVolume == 0 {
		return stat
	}

	elapsedDays := uint32(now.Sub(stat.FirstTradeDate) / (24 * time.Hour))
	windowsDue := elapsedDays / windowDays
	if windowsDue <= stat.DecayedWindows {
		return stat
	}

	passes := windowsDue - stat.DecayedWindows
	volume := stat.TotalVolume
	w := int64(windowDays)
	for i := uint32(0); i < passes && volume > 0; i++ {
		volume -= (volume + w - 1) / w
	}

	stat.TotalVolume = volume
	stat.DecayedWindows = windowsDue
	return stat
}

// DecayPass runs a single maintenance-tick decay pass over every stored
// trade statistic, returning the number of records whose volume changed.
// This is the stateless sweep the maintenance loop calls once per interval;
// RecordTrade performs the equivalent lazy decay inline for whichever single
// record a fill touches.
func (k Keeper) DecayPass(ctx sdk.Context) uint32 {
	windowDays := k.GetParams(ctx).SlidingStatisticWindowDays
	now := ctx.BlockTime()

	var touched []types.TradeStatistic
	k.IterateTradeStatistics(ctx, func(s types.TradeStatistic) bool {
		decayed := decayStatistic(s, windowDays, now)
		if decayed.TotalVolume != s.TotalVolume || decayed.DecayedWindows != s.DecayedWindows {
			touched = append(touched, decayed)
		}
		return false
	})

	for _, s := range touched {
		k.setTradeStatistic(ctx, s)
	}
	return uint32(len(touched))
}
