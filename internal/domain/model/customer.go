package model

// Customer holds the static profile of a scored customer.
type Customer struct {
	ID               int64
	CustomerID       string
	Age              float64
	Occupation       string
	AnnualIncome     float64
	PaymentBehaviour string
}

// CreditRecord is one month of credit metrics for a customer.
// Metric fields are nil when the source data had no value.
type CreditRecord struct {
	ID                     int64
	CustomerID             string
	Month                  *int64
	MonthNo                int64
	NumBankAccounts        *float64
	NumCreditCard          *int64
	InterestRate           *float64
	NumOfLoan              *float64
	DelayFromDueDate       *int64
	NumOfDelayedPayment    *int64
	ChangedCreditLimit     *float64
	NumCreditInquiries     *int64
	OutstandingDebt        *float64
	CreditUtilizationRatio *float64
	TotalEMIPerMonth       *float64
	AmountInvestedMonthly  *float64
}

// ImportSummary reports how many rows a bulk load wrote.
type ImportSummary struct {
	Customers int64
	Records   int64
}
