package keeper

import (
	"encoding/json"
	"time"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// Keeper of the marketfee store.
type Keeper struct {
	skey storetypes.StoreKey
	cdc  codec.BinaryCodec

	// balances is the host chain's collaborator for crediting fill receipts
	// net of fees. Out of scope: the balance ledger itself.
	balances types.AssetFeeProvider

	// registrars is the host chain's collaborator for resolving referral
	// registrars and crediting pending reward balances. Out of scope: account
	// and referral registration.
	registrars types.RegistrarProvider

	// authority is the address capable of executing a MsgUpdateParams
	// message. This should be the x/gov module account.
	authority string
}

// NewKeeper creates and returns an instance of the marketfee keeper.
func NewKeeper(
	cdc codec.BinaryCodec,
	skey storetypes.StoreKey,
	balances types.AssetFeeProvider,
	registrars types.RegistrarProvider,
	authority string,
) Keeper {
	return Keeper{
		cdc:        cdc,
		skey:       skey,
		balances:   balances,
		registrars: registrars,
		authority:  authority,
	}
}

// Codec returns the keeper's binary codec.
func (k Keeper) Codec() codec.BinaryCodec {
	return k.cdc
}

// StoreKey returns the keeper's store key.
func (k Keeper) StoreKey() storetypes.StoreKey {
	return k.skey
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-scoped logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// paramsStore is the stored format of Params.
type paramsStore struct {
	SlidingStatisticWindowDays  uint32 `json:"sliding_statistic_window_days"`
	DynamicFeeActivationTime    int64  `json:"dynamic_fee_activation_time"`
	RewardSharingActivationTime int64  `json:"reward_sharing_activation_time"`
	MaintenanceIntervalSeconds  uint32 `json:"maintenance_interval_seconds"`
}

// SetParams sets the module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := ctx.KVStore(k.skey)
	bz, err := json.Marshal(&paramsStore{
		SlidingStatisticWindowDays:  params.SlidingStatisticWindowDays,
		DynamicFeeActivationTime:    params.DynamicFeeActivationTime.Unix(),
		RewardSharingActivationTime: params.RewardSharingActivationTime.Unix(),
		MaintenanceIntervalSeconds:  params.MaintenanceIntervalSeconds,
	})
	if err != nil {
		return err
	}
	store.Set(types.ParamsKey(), bz)
	return nil
}

// GetParams returns the module parameters, or the defaults if unset.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.ParamsKey())
	if bz == nil {
		return types.DefaultParams()
	}

	var ps paramsStore
	if err := json.Unmarshal(bz, &ps); err != nil {
		return types.DefaultParams()
	}

	return types.Params{
		SlidingStatisticWindowDays:  ps.SlidingStatisticWindowDays,
		DynamicFeeActivationTime:    time.Unix(ps.DynamicFeeActivationTime, 0).UTC(),
		RewardSharingActivationTime: time.Unix(ps.RewardSharingActivationTime, 0).UTC(),
		MaintenanceIntervalSeconds:  ps.MaintenanceIntervalSeconds,
	}
}

// IsDynamicFeeActive reports whether the dynamic market-fee hardfork is
// active at the current block time.
func (k Keeper) IsDynamicFeeActive(ctx sdk.Context) bool {
	activation := k.GetParams(ctx).DynamicFeeActivationTime
	return !ctx.BlockTime().Before(activation)
}

// IsRewardSharingActive reports whether referral reward splitting is active
// at the current block time.
func (k Keeper) IsRewardSharingActive(ctx sdk.Context) bool {
	activation := k.GetParams(ctx).RewardSharingActivationTime
	return !ctx.BlockTime().Before(activation)
}

// GetNextMaintenanceTime returns the scheduled time of the next maintenance
// tick, or the zero time if none has ever been scheduled.
func (k Keeper) GetNextMaintenanceTime(ctx sdk.Context) (t time.Time, found bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.NextMaintenanceTimeKey())
	if bz == nil {
		return time.Time{}, false
	}
	var unix int64
	if err := json.Unmarshal(bz, &unix); err != nil {
		return time.Time{}, false
	}
	return time.Unix(unix, 0).UTC(), true
}

// SetNextMaintenanceTime schedules the next maintenance tick.
func (k Keeper) SetNextMaintenanceTime(ctx sdk.Context, t time.Time) {
	store := ctx.KVStore(k.skey)
	bz, err := json.Marshal(t.Unix())
	if err != nil {
		return
	}
	store.Set(types.NextMaintenanceTimeKey(), bz)
}
