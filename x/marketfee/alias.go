package marketfee

import (
	"github.com/virtengine/virtengine-marketfee/x/marketfee/keeper"
	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// Module aliases
const (
	ModuleName = types.ModuleName
	StoreKey   = types.StoreKey
	RouterKey  = types.RouterKey
)

// Keeper type alias
type (
	Keeper = keeper.Keeper
)

// Type aliases
type (
	AssetID          = types.AssetID
	AccountID        = types.AccountID
	FeeTier          = types.FeeTier
	FeeTable         = types.FeeTable
	AssetFeeConfig   = types.AssetFeeConfig
	AssetFlag        = types.AssetFlag
	TradeStatistic   = types.TradeStatistic
	Fill             = types.Fill
	Receipt          = types.Receipt
	FillResult       = types.FillResult
	LegResult        = types.LegResult
	Params           = types.Params
	GenesisState     = types.GenesisState
	AssetFeeProvider = types.AssetFeeProvider
	RegistrarProvider = types.RegistrarProvider

	MsgSetAssetFeeConfig         = types.MsgSetAssetFeeConfig
	MsgSetAssetFeeConfigResponse = types.MsgSetAssetFeeConfigResponse
	MsgUpdateParams              = types.MsgUpdateParams
	MsgUpdateParamsResponse      = types.MsgUpdateParamsResponse

	MsgServer   = types.MsgServer
	QueryServer = types.QueryServer
)

// Flag constants
const (
	ChargeMarketFee        = types.ChargeMarketFee
	ChargeDynamicMarketFee = types.ChargeDynamicMarketFee
)

// Function aliases
var (
	NewKeeper                = keeper.NewKeeper
	NewMsgServerImpl         = keeper.NewMsgServerImpl
	DefaultGenesisState      = types.DefaultGenesisState
	DefaultParams            = types.DefaultParams
	RegisterInterfaces       = types.RegisterInterfaces
	RegisterLegacyAminoCodec = types.RegisterLegacyAminoCodec
	CalculatePercent         = types.CalculatePercent
	LookupTier               = types.LookupTier
)

// Error aliases
var (
	ErrHardforkNotYetActive   = types.ErrHardforkNotYetActive
	ErrInvalidFeeTable        = types.ErrInvalidFeeTable
	ErrFlagTableMismatch      = types.ErrFlagTableMismatch
	ErrAssetFeeConfigNotFound = types.ErrAssetFeeConfigNotFound
	ErrInvalidAddress         = types.ErrInvalidAddress
	ErrUnauthorized           = types.ErrUnauthorized
	ErrInvalidParams          = types.ErrInvalidParams
)
