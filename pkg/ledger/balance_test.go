package ledger_test

import (
	"testing"

	"github.com/bahtledger/backend/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAccountBalance() {
	cash := suite.createTestAccount("Cash", models.AccountTypeAsset)
	salary := suite.createTestAccount("Salary", models.AccountTypeIncome)
	food := suite.createTestAccount("Food", models.AccountTypeExpense)

	_, err := suite.ledger.SetOpeningBalance(suite.ctx, cash.ID, dec(1000), "2025-10-01")
	suite.Require().NoError(err)

	_ = suite.createTestTransaction("2025-10-01", 5000, cash, salary)
	_ = suite.createTestTransaction("2025-10-05", 200, food, cash)

	tests := []struct {
		name    string
		account models.Account
		dateTo  string
		balance float64
	}{
		{"Cash", cash, "", 5800},
		{"Salary", salary, "", -5000},
		{"Food", food, "", 200},
		{"Cash before spending", cash, "2025-10-04", 6000},
		{"Cash on the spending date", cash, "2025-10-05", 5800},
		{"Cash before any transaction", cash, "2025-09-30", 1000},
		{"Food before spending", food, "2025-10-04", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			balance, err := suite.ledger.AccountBalance(suite.ctx, tt.account.ID, tt.dateTo)
			require.NoError(t, err)
			assert.True(t, balance.Equal(dec(tt.balance)), "balance is %s, expected %v", balance, tt.balance)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountBalanceEmpty() {
	cash := suite.createTestAccount("Cash", models.AccountTypeAsset)
	assert.True(suite.T(), suite.balance(cash).IsZero())
}

func (suite *TestSuiteStandard) TestAccountBalanceFractions() {
	cash := suite.createTestAccount("Cash", models.AccountTypeAsset)
	food := suite.createTestAccount("Food", models.AccountTypeExpense)

	for i := 0; i < 10; i++ {
		_ = suite.createTestTransaction("2025-10-05", 0.1, food, cash)
	}

	assert.True(suite.T(), suite.balance(food).Equal(dec(1)), "balance is %s", suite.balance(food))
	assert.True(suite.T(), suite.balance(cash).Equal(dec(-1)), "balance is %s", suite.balance(cash))
}

func (suite *TestSuiteStandard) TestAccountBalanceFails() {
	cash := suite.createTestAccount("Cash", models.AccountTypeAsset)

	_, err := suite.ledger.AccountBalance(suite.ctx, cash.ID+1, "")
	assert.ErrorIs(suite.T(), err, models.ErrAccountNotFound)

	_, err = suite.ledger.AccountBalance(suite.ctx, cash.ID, "2025-13-01")
	assert.ErrorIs(suite.T(), err, models.ErrInvalidDate)

	suite.CloseDB()
	_, err = suite.ledger.AccountBalance(suite.ctx, cash.ID, "")
	assert.ErrorIs(suite.T(), err, models.ErrStorage)
}

// TestOpeningBalanceAdditive verifies that every opening balance increases
// the account balance by its amount.
func (suite *TestSuiteStandard) TestOpeningBalanceAdditive() {
	cash := suite.createTestAccount("Cash", models.AccountTypeAsset)
	salary := suite.createTestAccount("Salary", models.AccountTypeIncome)
	_ = suite.createTestTransaction("2025-10-01", 300, cash, salary)

	for _, amount := range []float64{1000, 0.5, 250.25} {
		before := suite.balance(cash)

		_, err := suite.ledger.SetOpeningBalance(suite.ctx, cash.ID, dec(amount), "2025-01-01")
		suite.Require().NoError(err)

		assert.True(suite.T(), suite.balance(cash).Equal(before.Add(dec(amount))), "balance after adding %v is %s", amount, suite.balance(cash))
	}

	balances, err := suite.ledger.OpeningBalances(suite.ctx, cash.ID)
	suite.Require().NoError(err)
	assert.Len(suite.T(), balances, 3)
}

func (suite *TestSuiteStandard) TestOpeningBalances() {
	cash := suite.createTestAccount("Cash", models.AccountTypeAsset)
	bank := suite.createTestAccount("Bank - SCB", models.AccountTypeAsset)

	_, err := suite.ledger.SetOpeningBalance(suite.ctx, cash.ID, dec(10), "2025-03-01")
	suite.Require().NoError(err)
	_, err = suite.ledger.SetOpeningBalance(suite.ctx, cash.ID, dec(20), "2025-01-01")
	suite.Require().NoError(err)
	_, err = suite.ledger.SetOpeningBalance(suite.ctx, bank.ID, dec(30), "2025-01-01")
	suite.Require().NoError(err)

	balances, err := suite.ledger.OpeningBalances(suite.ctx, cash.ID)
	suite.Require().NoError(err)
	suite.Require().Len(balances, 2)
	assert.Equal(suite.T(), "2025-01-01", balances[0].Date)
	assert.True(suite.T(), balances[0].Amount.Equal(dec(20)))
	assert.Equal(suite.T(), "2025-03-01", balances[1].Date)

	_, err = suite.ledger.OpeningBalances(suite.ctx, 999)
	assert.ErrorIs(suite.T(), err, models.ErrAccountNotFound)
}

func (suite *TestSuiteStandard) TestSetOpeningBalanceFails() {
	cash := suite.createTestAccount("Cash", models.AccountTypeAsset)

	tests := []struct {
		name      string
		accountID uint
		amount    float64
		date      string
		err       error
	}{
		{"Missing account", 999, 100, "2025-10-01", models.ErrAccountNotFound},
		{"Missing account with invalid date", 999, 100, "today", models.ErrAccountNotFound},
		{"Invalid date", cash.ID, 100, "2025-10-32", models.ErrInvalidDate},
		{"Invalid date with invalid amount", cash.ID, -1, "2025/10/01", models.ErrInvalidDate},
		{"Zero amount", cash.ID, 0, "2025-10-01", models.ErrAmountNotPositive},
		{"Negative amount", cash.ID, -100, "2025-10-01", models.ErrAmountNotPositive},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.ledger.SetOpeningBalance(suite.ctx, tt.accountID, dec(tt.amount), tt.date)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.True(suite.T(), suite.balance(cash).IsZero())
}
