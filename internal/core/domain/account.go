package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountCode identifies an account in the fixed chart of accounts.
type AccountCode string

const (
	CashBank           AccountCode = "1000_cash_bank"
	AccountsReceivable AccountCode = "1100_accounts_receivable"
	SalesRevenue       AccountCode = "4000_sales_revenue"
	GeneralExpenses    AccountCode = "5000_general_expenses"
	OperatingExpenses  AccountCode = "5100_operating_expenses"
	CapitalExpenses    AccountCode = "5200_capital_expenses"
)

// Account describes one entry of the chart of accounts.
type Account struct {
	Code        AccountCode `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
}

// IsDebitNormal reports whether the account's balance normally sits on the debit side.
func (a Account) IsDebitNormal() bool {
	return a.AccountType == Asset || a.AccountType == Expense
}

var chartOfAccounts = map[AccountCode]Account{
	CashBank:           {Code: CashBank, Name: "Cash and Bank", AccountType: Asset},
	AccountsReceivable: {Code: AccountsReceivable, Name: "Accounts Receivable", AccountType: Asset},
	SalesRevenue:       {Code: SalesRevenue, Name: "Sales Revenue", AccountType: Revenue},
	GeneralExpenses:    {Code: GeneralExpenses, Name: "General Expenses", AccountType: Expense},
	OperatingExpenses:  {Code: OperatingExpenses, Name: "Operating Expenses", AccountType: Expense},
	CapitalExpenses:    {Code: CapitalExpenses, Name: "Capital Expenses", AccountType: Expense},
}

// LookupAccount returns the chart definition for code.
func LookupAccount(code AccountCode) (Account, bool) {
	acc, ok := chartOfAccounts[code]
	return acc, ok
}
