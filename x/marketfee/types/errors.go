package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
)

// Error codes for the marketfee module.
// NOTE: Error codes start at 7100 to avoid conflicts with Cosmos SDK core,
// IBC-Go, and the rest of the host chain's modules.
var (
	// ErrHardforkNotYetActive is returned when a transaction sets the dynamic
	// fee flag or table before the dynamic-fee activation time.
	ErrHardforkNotYetActive = errorsmod.Register(ModuleName, 7100, "dynamic market fee hardfork not yet active")

	// ErrInvalidFeeTable is returned when a FeeTable fails its structural
	// invariants, or a bare percent field (market_fee_percent, reward_percent)
	// exceeds Scale.
	ErrInvalidFeeTable = errorsmod.Register(ModuleName, 7101, "invalid fee table")

	// ErrFlagTableMismatch is returned when CHARGE_DYNAMIC_MARKET_FEE is set
	// without dynamic_fees present, or vice versa.
	ErrFlagTableMismatch = errorsmod.Register(ModuleName, 7102, "dynamic market fee flag and fee table presence disagree")

	// ErrAssetFeeConfigNotFound is returned when looking up an asset with no
	// stored fee configuration.
	ErrAssetFeeConfigNotFound = errorsmod.Register(ModuleName, 7103, "asset fee configuration not found")

	// ErrInvalidAddress is returned when a bech32 address fails to parse.
	ErrInvalidAddress = errorsmod.Register(ModuleName, 7104, "invalid address")

	// ErrUnauthorized is returned when the sender is not the module authority.
	ErrUnauthorized = errorsmod.Register(ModuleName, 7105, "unauthorized")

	// ErrInvalidParams is returned when module parameters fail validation.
	ErrInvalidParams = errorsmod.Register(ModuleName, 7106, "invalid params")
)

// Sentinel errors for FeeTable validation detail messages. These are wrapped
// into ErrInvalidFeeTable rather than registered as distinct chain error
// codes, since they are all instances of the same rejection class.
var (
	errEmptyTierSequence       = errors.New("tier sequence must not be empty")
	errFirstTierNotZero        = errors.New("first tier must have threshold_amount == 0")
	errNegativeThreshold       = errors.New("threshold_amount must be non-negative")
	errThresholdsNotIncreasing = errors.New("thresholds must be strictly increasing")
	errPercentOutOfRange       = errors.New("percent must be in [0, Scale]")
)
