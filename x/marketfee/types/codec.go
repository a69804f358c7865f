package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/legacy"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/msgservice"
)

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())
)

func init() {
	RegisterLegacyAminoCodec(amino)
}

// RegisterLegacyAminoCodec registers the necessary interfaces and concrete
// types on the provided LegacyAmino codec. These types are used for Amino
// JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	legacy.RegisterAminoMsg(cdc, &MsgSetAssetFeeConfig{}, "marketfee/MsgSetAssetFeeConfig")
	legacy.RegisterAminoMsg(cdc, &MsgUpdateParams{}, "marketfee/MsgUpdateParams")
}

// RegisterInterfaces registers the interfaces types with the interface registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSetAssetFeeConfig{},
		&MsgUpdateParams{},
	)

	msgservice.RegisterMsgServiceDesc(registry, &_Msg_serviceDesc)
}

// _Msg_serviceDesc is the grpc.ServiceDesc for the Msg service.
var _Msg_serviceDesc = struct {
	ServiceName string
	HandlerType interface{}
	Methods     []struct {
		MethodName string
		Handler    interface{}
	}
	Streams  []struct{}
	Metadata interface{}
}{
	ServiceName: "virtengine.marketfee.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []struct {
		MethodName string
		Handler    interface{}
	}{
		{MethodName: "SetAssetFeeConfig", Handler: nil},
		{MethodName: "UpdateParams", Handler: nil},
	},
	Streams:  []struct{}{},
	Metadata: "virtengine/marketfee/v1/msg.proto",
}

// MsgServer is the interface for the message server.
type MsgServer interface {
	SetAssetFeeConfig(ctx context.Context, msg *MsgSetAssetFeeConfig) (*MsgSetAssetFeeConfigResponse, error)
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// RegisterMsgServer registers the MsgServer.
func RegisterMsgServer(s interface{ RegisterService(desc interface{}, impl interface{}) }, impl MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, impl)
}

// QueryServer is the interface for the query server.
type QueryServer interface {
	AssetFeeConfig(ctx sdk.Context, req *QueryAssetFeeConfigRequest) (*QueryAssetFeeConfigResponse, error)
	EffectiveFeePercent(ctx sdk.Context, req *QueryEffectiveFeePercentRequest) (*QueryEffectiveFeePercentResponse, error)
	TradeStatistic(ctx sdk.Context, req *QueryTradeStatisticRequest) (*QueryTradeStatisticResponse, error)
	AccumulatedFees(ctx sdk.Context, req *QueryAccumulatedFeesRequest) (*QueryAccumulatedFeesResponse, error)
	Params(ctx sdk.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
}

// _Query_serviceDesc is the grpc.ServiceDesc for the Query service.
var _Query_serviceDesc = struct {
	ServiceName string
	HandlerType interface{}
	Methods     []struct {
		MethodName string
		Handler    interface{}
	}
	Streams  []struct{}
	Metadata interface{}
}{
	ServiceName: "virtengine.marketfee.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []struct {
		MethodName string
		Handler    interface{}
	}{
		{MethodName: "AssetFeeConfig", Handler: nil},
		{MethodName: "EffectiveFeePercent", Handler: nil},
		{MethodName: "TradeStatistic", Handler: nil},
		{MethodName: "AccumulatedFees", Handler: nil},
		{MethodName: "Params", Handler: nil},
	},
	Streams:  []struct{}{},
	Metadata: "virtengine/marketfee/v1/query.proto",
}

// RegisterQueryServer registers the QueryServer.
func RegisterQueryServer(s interface{ RegisterService(desc interface{}, impl interface{}) }, impl QueryServer) {
	s.RegisterService(&_Query_serviceDesc, impl)
}

// Query request/response types.

// QueryAssetFeeConfigRequest requests the fee configuration for a single asset.
type QueryAssetFeeConfigRequest struct {
	AssetID AssetID `json:"asset_id"`
}

// QueryAssetFeeConfigResponse returns an asset's fee configuration.
type QueryAssetFeeConfigResponse struct {
	Config AssetFeeConfig `json:"config"`
}

// QueryEffectiveFeePercentRequest asks what percent would currently apply to
// a hypothetical maker or taker receipt, without mutating any state.
type QueryEffectiveFeePercentRequest struct {
	AccountID AccountID `json:"account_id"`
	AssetID   AssetID   `json:"asset_id"`
	IsMaker   bool      `json:"is_maker"`
}

// QueryEffectiveFeePercentResponse reports the looked-up percent and whether
// it came from the dynamic schedule or the flat rate.
type QueryEffectiveFeePercentResponse struct {
	Percent    uint16 `json:"percent"`
	WasDynamic bool   `json:"was_dynamic"`
}

// QueryTradeStatisticRequest requests an account's rolling volume record for
// a given asset.
type QueryTradeStatisticRequest struct {
	AccountID AccountID `json:"account_id"`
	AssetID   AssetID   `json:"asset_id"`
}

// QueryTradeStatisticResponse returns the stored trade statistic.
type QueryTradeStatisticResponse struct {
	Statistic TradeStatistic `json:"statistic"`
}

// QueryAccumulatedFeesRequest requests the accumulated-fees counter for an asset.
type QueryAccumulatedFeesRequest struct {
	AssetID AssetID `json:"asset_id"`
}

// QueryAccumulatedFeesResponse returns the accumulated-fees counter.
type QueryAccumulatedFeesResponse struct {
	Amount int64 `json:"amount"`
}

// QueryParamsRequest requests the module parameters.
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}
