package types

import "encoding/binary"

const (
	// ModuleName is the module name constant used in many places
	ModuleName = "marketfee"

	// StoreKey is the store key string for the marketfee module
	StoreKey = ModuleName

	// RouterKey is the message route for the marketfee module
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the marketfee module
	QuerierRoute = ModuleName
)

// Store key prefixes.
//
// Keys are big-endian encoded so that prefix iteration visits records in
// ascending (account_id, asset_id) order, which the decay pass relies on
// for deterministic processing.
var (
	// PrefixParams is the prefix for module parameters.
	PrefixParams = []byte{0x01}

	// PrefixAssetFeeConfig is the prefix for per-asset fee configuration.
	// Key: PrefixAssetFeeConfig | asset_id -> AssetFeeConfig
	PrefixAssetFeeConfig = []byte{0x02}

	// PrefixTradeStatistic is the prefix for trade statistics.
	// Key: PrefixTradeStatistic | account_id | asset_id -> TradeStatistic
	PrefixTradeStatistic = []byte{0x03}

	// PrefixAccumulatedFees is the prefix for per-asset accumulated fees.
	// Key: PrefixAccumulatedFees | asset_id -> int64
	PrefixAccumulatedFees = []byte{0x04}

	// PrefixNextMaintenanceTime is the prefix for the scheduled maintenance time.
	PrefixNextMaintenanceTime = []byte{0x05}
)

// ParamsKey returns the store key for module parameters.
func ParamsKey() []byte {
	return PrefixParams
}

// NextMaintenanceTimeKey returns the store key for the next scheduled maintenance time.
func NextMaintenanceTimeKey() []byte {
	return PrefixNextMaintenanceTime
}

// AssetFeeConfigKey returns the store key for an asset's fee configuration.
func AssetFeeConfigKey(asset AssetID) []byte {
	key := make([]byte, 0, len(PrefixAssetFeeConfig)+8)
	key = append(key, PrefixAssetFeeConfig...)
	key = append(key, encodeUint64(uint64(asset))...)
	return key
}

// AssetFeeConfigPrefixKey returns the prefix for all asset fee configurations.
func AssetFeeConfigPrefixKey() []byte {
	return PrefixAssetFeeConfig
}

// AccumulatedFeesKey returns the store key for an asset's accumulated fees counter.
func AccumulatedFeesKey(asset AssetID) []byte {
	key := make([]byte, 0, len(PrefixAccumulatedFees)+8)
	key = append(key, PrefixAccumulatedFees...)
	key = append(key, encodeUint64(uint64(asset))...)
	return key
}

// TradeStatisticKey returns the store key for a (account, asset) trade statistic.
func TradeStatisticKey(account AccountID, asset AssetID) []byte {
	key := make([]byte, 0, len(PrefixTradeStatistic)+16)
	key = append(key, PrefixTradeStatistic...)
	key = append(key, encodeUint64(uint64(account))...)
	key = append(key, encodeUint64(uint64(asset))...)
	return key
}

// TradeStatisticAccountPrefixKey returns the prefix for all trade statistics of an account.
func TradeStatisticAccountPrefixKey(account AccountID) []byte {
	key := make([]byte, 0, len(PrefixTradeStatistic)+8)
	key = append(key, PrefixTradeStatistic...)
	key = append(key, encodeUint64(uint64(account))...)
	return key
}

// TradeStatisticPrefixKey returns the prefix for all trade statistics.
func TradeStatisticPrefixKey() []byte {
	return PrefixTradeStatistic
}

// encodeUint64 encodes n as big-endian bytes for lexicographically ordered keys.
func encodeUint64(n uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, n)
	return buf
}

// decodeUint64 decodes big-endian bytes written by encodeUint64.
func decodeUint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
