package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type constants.
const (
	TypeMsgSetAssetFeeConfig = "set_asset_fee_config"
	TypeMsgUpdateParams      = "update_params"
)

var (
	_ sdk.Msg = &MsgSetAssetFeeConfig{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSetAssetFeeConfig is the message for creating or updating an asset's
// fee configuration.
type MsgSetAssetFeeConfig struct {
	// Authority is the account permitted to configure this asset's fees
	// (the asset's issuer, in the surrounding system's model).
	Authority string `json:"authority"`

	Config AssetFeeConfig `json:"config"`
}

// NewMsgSetAssetFeeConfig creates a new MsgSetAssetFeeConfig.
func NewMsgSetAssetFeeConfig(authority string, config AssetFeeConfig) *MsgSetAssetFeeConfig {
	return &MsgSetAssetFeeConfig{Authority: authority, Config: config}
}

// Route returns the route for the message.
func (msg MsgSetAssetFeeConfig) Route() string { return RouterKey }

// Type returns the type of the message.
func (msg MsgSetAssetFeeConfig) Type() string { return TypeMsgSetAssetFeeConfig }

// GetSigners returns the signers of the message.
func (msg MsgSetAssetFeeConfig) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation: everything Validate() covers
// is stateless, but the hardfork gate (stateful, depends on block time) is
// enforced by the keeper, not here.
func (msg MsgSetAssetFeeConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrap("invalid authority address")
	}
	return msg.Config.Validate()
}

// MsgSetAssetFeeConfigResponse is the response for MsgSetAssetFeeConfig.
type MsgSetAssetFeeConfigResponse struct{}

// MsgUpdateParams is the message for updating module parameters.
type MsgUpdateParams struct {
	// Authority is the address that controls the module (the x/gov module
	// account in a governance-gated chain).
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// NewMsgUpdateParams creates a new MsgUpdateParams.
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

// Route returns the route for the message.
func (msg MsgUpdateParams) Route() string { return RouterKey }

// Type returns the type of the message.
func (msg MsgUpdateParams) Type() string { return TypeMsgUpdateParams }

// GetSigners returns the signers of the message.
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// ValidateBasic validates the message.
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrap("invalid authority address")
	}
	return msg.Params.Validate()
}

// MsgUpdateParamsResponse is the response for MsgUpdateParams.
type MsgUpdateParamsResponse struct{}
