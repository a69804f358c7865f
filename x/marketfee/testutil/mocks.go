package testutil

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/mock"

	"github.com/virtengine/virtengine-marketfee/x/marketfee/types"
)

// BalancesMock is a testify mock implementation of types.AssetFeeProvider.
type BalancesMock struct {
	mock.Mock
}

func (m *BalancesMock) CreditBalance(ctx sdk.Context, account types.AccountID, asset types.AssetID, amount int64) error {
	args := m.Called(ctx, account, asset, amount)
	return args.Error(0)
}

// RegistrarsMock is a testify mock implementation of types.RegistrarProvider.
type RegistrarsMock struct {
	mock.Mock
}

func (m *RegistrarsMock) GetRegistrar(ctx sdk.Context, receiver types.AccountID) (types.AccountID, bool, bool) {
	args := m.Called(ctx, receiver)
	return args.Get(0).(types.AccountID), args.Bool(1), args.Bool(2)
}

func (m *RegistrarsMock) CreditPendingMarketFeeReward(ctx sdk.Context, registrar types.AccountID, asset types.AssetID, amount int64) error {
	args := m.Called(ctx, registrar, asset, amount)
	return args.Error(0)
}

// NoRegistrar is a RegistrarProvider stub that reports every receiver as
// having no registrar. Use it in tests that only exercise fee charging, not
// reward splitting.
type NoRegistrar struct{}

func (NoRegistrar) GetRegistrar(sdk.Context, types.AccountID) (types.AccountID, bool, bool) {
	return 0, false, false
}

func (NoRegistrar) CreditPendingMarketFeeReward(sdk.Context, types.AccountID, types.AssetID, int64) error {
	return nil
}

// NoopBalances is an AssetFeeProvider stub that accepts every credit without
// tracking balances. Use it in tests that only assert on fee/event
// computation, not on downstream balance state.
type NoopBalances struct{}

func (NoopBalances) CreditBalance(sdk.Context, types.AccountID, types.AssetID, int64) error {
	return nil
}
