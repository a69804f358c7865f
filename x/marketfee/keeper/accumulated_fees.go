package keeper

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// GetAccumulatedFees returns the accumulated-fees counter for an asset.
func (k Keeper) GetAccumulatedFees(ctx sdk.Context, asset types.AssetID) int64 {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.AccumulatedFeesKey(asset))
	if bz == nil {
		return 0
	}

	var amount int64
	if err := json.Unmarshal(bz, &amount); err != nil {
		return 0
	}
	return amount
}

// setAccumulatedFees overwrites the accumulated-fees counter for an asset.
func (k Keeper) setAccumulatedFees(ctx sdk.Context, asset types.AssetID, amount int64) {
	store := ctx.KVStore(k.skey)
	bz, err := json.Marshal(amount)
	if err != nil {
		return
	}
	store.Set(types.AccumulatedFeesKey(asset), bz)
}

// addAccumulatedFees adds amount to an asset's accumulated-fees counter.
func (k Keeper) addAccumulatedFees(ctx sdk.Context, asset types.AssetID, amount int64) {
	if amount == 0 {
		return
	}
	k.setAccumulatedFees(ctx, asset, k.GetAccumulatedFees(ctx, asset)+amount)
}
