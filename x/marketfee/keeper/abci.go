package keeper

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// BeginBlocker runs the module's maintenance tick: a decay pass that fires
// once the configured maintenance interval has elapsed, rather than on
// every block.
func (k Keeper) BeginBlocker(ctx sdk.Context) {
	next, found := k.GetNextMaintenanceTime(ctx)
	if found && ctx.BlockTime().Before(next) {
		return
	}

	touched := k.DecayPass(ctx)
	if touched > 0 {
		_ = ctx.EventManager().EmitTypedEvent(&types.EventMaintenanceDecay{RecordsDecayed: touched})
		k.Logger(ctx).Info("marketfee maintenance decay pass", "records_decayed", touched)
	}

	interval := k.GetParams(ctx).MaintenanceIntervalSeconds
	k.SetNextMaintenanceTime(ctx, ctx.BlockTime().Add(time.Duration(interval)*time.Second))
}
