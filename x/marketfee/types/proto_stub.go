// Package types contains proto.Message stub implementations for the
// marketfee module.
//
// These are temporary stub implementations until proper protobuf generation
// is set up. They implement the proto.Message interface required by the
// Cosmos SDK.
package types

import "fmt"

// Proto.Message interface stubs for MsgSetAssetFeeConfig.
func (m *MsgSetAssetFeeConfig) ProtoMessage()  {}
func (m *MsgSetAssetFeeConfig) Reset()         { *m = MsgSetAssetFeeConfig{} }
func (m *MsgSetAssetFeeConfig) String() string { return fmt.Sprintf("%+v", *m) }

// Proto.Message interface stubs for MsgSetAssetFeeConfigResponse.
func (m *MsgSetAssetFeeConfigResponse) ProtoMessage()  {}
func (m *MsgSetAssetFeeConfigResponse) Reset()         { *m = MsgSetAssetFeeConfigResponse{} }
func (m *MsgSetAssetFeeConfigResponse) String() string { return fmt.Sprintf("%+v", *m) }

// Proto.Message interface stubs for MsgUpdateParams.
func (m *MsgUpdateParams) ProtoMessage()  {}
func (m *MsgUpdateParams) Reset()         { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string { return fmt.Sprintf("%+v", *m) }

// Proto.Message interface stubs for MsgUpdateParamsResponse.
func (m *MsgUpdateParamsResponse) ProtoMessage()  {}
func (m *MsgUpdateParamsResponse) Reset()         { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string { return fmt.Sprintf("%+v", *m) }

// Event type stubs.

func (m *EventAssetFeeConfigSet) ProtoMessage()  {}
func (m *EventAssetFeeConfigSet) Reset()         { *m = EventAssetFeeConfigSet{} }
func (m *EventAssetFeeConfigSet) String() string { return fmt.Sprintf("%+v", *m) }

func (m *EventFillFeeApplied) ProtoMessage()  {}
func (m *EventFillFeeApplied) Reset()         { *m = EventFillFeeApplied{} }
func (m *EventFillFeeApplied) String() string { return fmt.Sprintf("%+v", *m) }

func (m *EventRewardSplit) ProtoMessage()  {}
func (m *EventRewardSplit) Reset()         { *m = EventRewardSplit{} }
func (m *EventRewardSplit) String() string { return fmt.Sprintf("%+v", *m) }

func (m *EventMaintenanceDecay) ProtoMessage()  {}
func (m *EventMaintenanceDecay) Reset()         { *m = EventMaintenanceDecay{} }
func (m *EventMaintenanceDecay) String() string { return fmt.Sprintf("%+v", *m) }

// Genesis state stubs.

func (m *GenesisState) ProtoMessage()  {}
func (m *GenesisState) Reset()         { *m = GenesisState{} }
func (m *GenesisState) String() string { return fmt.Sprintf("%+v", *m) }
