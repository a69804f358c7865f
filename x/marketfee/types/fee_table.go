package types

import (
	"sort"

	errorsmod "cosmossdk.io/errors"
)

// FeeTier is one step of a fee schedule: volume at or above ThresholdAmount
// (and below the next tier's threshold) pays Percent.
type FeeTier struct {
	ThresholdAmount int64  `json:"threshold_amount"`
	Percent         uint16 `json:"percent"`
}

// FeeTable is a per-asset tiered maker/taker fee schedule.
type FeeTable struct {
	MakerTiers []FeeTier `json:"maker_tiers"`
	TakerTiers []FeeTier `json:"taker_tiers"`
}

// Validate enforces the five structural invariants of the fee table: both
// sequences non-empty, both start at threshold 0, strictly increasing
// thresholds, non-negative thresholds, and percents within [0, Scale].
func (t FeeTable) Validate() error {
	if err := validateTierSequence(t.MakerTiers); err != nil {
		return errorsmod.Wrap(ErrInvalidFeeTable, "maker_tiers: "+err.Error())
	}
	if err := validateTierSequence(t.TakerTiers); err != nil {
		return errorsmod.Wrap(ErrInvalidFeeTable, "taker_tiers: "+err.Error())
	}
	return nil
}

func validateTierSequence(tiers []FeeTier) error {
	if len(tiers) == 0 {
		return errEmptyTierSequence
	}
	if tiers[0].ThresholdAmount != 0 {
		return errFirstTierNotZero
	}

	prev := int64(-1)
	for _, tier := range tiers {
		if tier.ThresholdAmount < 0 {
			return errNegativeThreshold
		}
		if tier.ThresholdAmount <= prev {
			return errThresholdsNotIncreasing
		}
		if tier.Percent > Scale {
			return errPercentOutOfRange
		}
		prev = tier.ThresholdAmount
	}
	return nil
}

// LookupTier returns the percent of the tier with the greatest
// ThresholdAmount <= volume. tiers must already be validated: non-empty,
// sorted ascending by ThresholdAmount, and starting at 0 — which makes the
// lookup total and well-defined for any non-negative volume.
func LookupTier(tiers []FeeTier, volume int64) uint16 {
	if len(tiers) == 0 {
		return 0
	}

	// sort.Search finds the first index whose threshold exceeds volume;
	// the tier immediately before it is the greatest-threshold match.
	idx := sort.Search(len(tiers), func(i int) bool {
		return tiers[i].ThresholdAmount > volume
	})
	if idx == 0 {
		// Can only happen if tiers[0].ThresholdAmount > volume, which
		// validated tables never produce since the first tier is 0 and
		// volume is never negative.
		return tiers[0].Percent
	}
	return tiers[idx-1].Percent
}
