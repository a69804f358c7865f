package types

// Receipt is one side of a symmetric fill: the asset and amount a party
// receives from a single match.
type Receipt struct {
	AssetID AssetID
	Amount  int64
}

// Fill is a single pairwise match between two crossing orders, as produced
// by the (out-of-scope) order-matching engine. Maker is the account whose
// order was resting in the book; Taker is the account whose order crossed
// it. Each side independently receives, and is independently charged a fee
// on, the asset it receives.
type Fill struct {
	Maker         AccountID
	Taker         AccountID
	MakerReceives Receipt
	TakerReceives Receipt
}

// LegResult is the outcome of applying the fee engine to one leg (one
// party's receipt) of a Fill.
type LegResult struct {
	Party      AccountID
	AssetID    AssetID
	Gross      int64
	Fee        int64
	Net        int64
	Reward     int64
	Registrar  AccountID
	HasReward  bool
	WasDynamic bool
	Percent    uint16
}

// FillResult is the outcome of applying the fee engine to both legs of a Fill.
type FillResult struct {
	MakerLeg LegResult
	TakerLeg LegResult
}
