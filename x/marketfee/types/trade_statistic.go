package types

import "time"

// TradeStatistic is the rolling-volume record for one (account, asset) pair.
// It is created lazily on the first match where account receives a dynamic-
// fee asset, mutated by the Fee Engine after every subsequent such match, and
// decayed by the maintenance tick.
type TradeStatistic struct {
	AccountID AccountID `json:"account_id"`
	AssetID   AssetID   `json:"asset_id"`

	// TotalVolume is the rolling accumulated volume received by this account
	// in this asset, subject to periodic decay.
	TotalVolume int64 `json:"total_volume"`

	// FirstTradeDate is the block time the record was created; it is the
	// epoch from which decay windows are measured.
	FirstTradeDate time.Time `json:"first_trade_date"`

	// DecayedWindows is the number of sliding-window decay events already
	// applied since FirstTradeDate. It is not part of the minimal external
	// schema (account_id / total_volume / first_trade_date) but is kept so
	// decay_pass is correct even across a skipped maintenance tick: the
	// number of windows due is always recomputed from elapsed time, and
	// this field is what lets the store apply only the windows not yet
	// applied rather than re-decaying or under-decaying.
	DecayedWindows uint32 `json:"decayed_windows"`
}

// IsZero reports whether the record carries no volume and can be pruned.
// Pruning is optional (spec observable behavior is identical either way);
// this helper exists so callers that choose to prune have a single place to
// ask the question.
func (s TradeStatistic) IsZero() bool {
	return s.TotalVolume == 0
}
