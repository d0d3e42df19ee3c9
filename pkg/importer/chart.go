package importer

import (
	"github.com/bahtledger/backend/pkg/ledger"
	"github.com/bahtledger/backend/pkg/models"
)

// DefaultChart is a chart of accounts for personal finances in Thailand.
var DefaultChart = []ledger.AccountRow{
	// Cash, banks and e-wallets
	{Name: "Cash", Type: models.AccountTypeAsset},
	{Name: "Bank - KBank", Type: models.AccountTypeAsset},
	{Name: "Bank - SCB", Type: models.AccountTypeAsset},
	{Name: "Bank - Krungthai (KTB)", Type: models.AccountTypeAsset},
	{Name: "Bank - Krungsri (BAY)", Type: models.AccountTypeAsset},
	{Name: "Bank - Bangkok Bank (BBL)", Type: models.AccountTypeAsset},
	{Name: "Bank - TMBThanachart (TTB)", Type: models.AccountTypeAsset},
	{Name: "Bank - UOB Thailand", Type: models.AccountTypeAsset},
	{Name: "Bank - CIMB Thai", Type: models.AccountTypeAsset},
	{Name: "Bank - KKP", Type: models.AccountTypeAsset},
	{Name: "Bank - GSB", Type: models.AccountTypeAsset},
	{Name: "Bank - Other", Type: models.AccountTypeAsset},
	{Name: "Wallet - TrueMoney", Type: models.AccountTypeAsset},
	{Name: "Wallet - Rabbit LINE Pay", Type: models.AccountTypeAsset},
	{Name: "Wallet - AirPay", Type: models.AccountTypeAsset},
	{Name: "Wallet - PromptPay", Type: models.AccountTypeAsset},
	{Name: "Wallet - PayPal", Type: models.AccountTypeAsset},
	{Name: "Wallet - Alipay", Type: models.AccountTypeAsset},
	{Name: "Wallet - WeChat Pay", Type: models.AccountTypeAsset},
	{Name: "Wallet - ShopeePay", Type: models.AccountTypeAsset},
	{Name: "Wallet - GrabPay", Type: models.AccountTypeAsset},
	{Name: "Wallet - Other", Type: models.AccountTypeAsset},

	// Credit cards
	{Name: "Credit Card - KBank", Type: models.AccountTypeLiability},
	{Name: "Credit Card - SCB", Type: models.AccountTypeLiability},
	{Name: "Credit Card - Krungsri (BAY/FirstChoice)", Type: models.AccountTypeLiability},
	{Name: "Credit Card - KTC", Type: models.AccountTypeLiability},
	{Name: "Credit Card - BBL", Type: models.AccountTypeLiability},
	{Name: "Credit Card - UOB", Type: models.AccountTypeLiability},
	{Name: "Credit Card - AEON", Type: models.AccountTypeLiability},
	{Name: "Credit Card - Citi", Type: models.AccountTypeLiability},
	{Name: "Credit Card - Other", Type: models.AccountTypeLiability},

	// Income
	{Name: "Salary", Type: models.AccountTypeIncome},
	{Name: "Allowance", Type: models.AccountTypeIncome},
	{Name: "Freelance / Side Income", Type: models.AccountTypeIncome},
	{Name: "Interest / Dividends", Type: models.AccountTypeIncome},
	{Name: "Gifts / Other Income", Type: models.AccountTypeIncome},
	{Name: "Refunds / Reimbursements", Type: models.AccountTypeIncome},
	{Name: "Sale of Assets", Type: models.AccountTypeIncome},
	{Name: "Tax Refund", Type: models.AccountTypeIncome},
	{Name: "Bonuses / Commissions", Type: models.AccountTypeIncome},
	{Name: "Investment Income", Type: models.AccountTypeIncome},
	{Name: "Rental Income", Type: models.AccountTypeIncome},
	{Name: "Royalties", Type: models.AccountTypeIncome},
	{Name: "Grants / Scholarships", Type: models.AccountTypeIncome},
	{Name: "Pension / Retirement", Type: models.AccountTypeIncome},
	{Name: "Insurance Payouts", Type: models.AccountTypeIncome},
	{Name: "Lottery / Gambling Winnings", Type: models.AccountTypeIncome},
	{Name: "Crowdfunding / Donations", Type: models.AccountTypeIncome},
	{Name: "Cashback / Rewards", Type: models.AccountTypeIncome},
	{Name: "Selling Personal Items", Type: models.AccountTypeIncome},
	{Name: "Other Miscellaneous Income", Type: models.AccountTypeIncome},

	// Expenses
	{Name: "Food & Dining", Type: models.AccountTypeExpense},
	{Name: "Transportation", Type: models.AccountTypeExpense},
	{Name: "Rent", Type: models.AccountTypeExpense},
	{Name: "Utilities", Type: models.AccountTypeExpense},
	{Name: "Groceries", Type: models.AccountTypeExpense},
	{Name: "Shopping", Type: models.AccountTypeExpense},
	{Name: "Health & Fitness", Type: models.AccountTypeExpense},
	{Name: "Entertainment", Type: models.AccountTypeExpense},
	{Name: "Travel", Type: models.AccountTypeExpense},
}
