package model

// CreditReport is a customer together with its monthly history ordered by month number.
type CreditReport struct {
	Customer Customer
	Records  []CreditRecord
}

// ChartData holds the report history as parallel series, one entry per record.
type ChartData struct {
	Months                 []int64    `json:"months"`
	OutstandingDebt        []*float64 `json:"outstanding_debt"`
	CreditUtilizationRatio []*float64 `json:"credit_utilization_ratio"`
	TotalEMIPerMonth       []*float64 `json:"total_emi_per_month"`
	NumBankAccounts        []*float64 `json:"num_bank_accounts"`
	NumCreditCard          []*int64   `json:"num_credit_card"`
	InterestRate           []*float64 `json:"interest_rate"`
	NumOfLoan              []*float64 `json:"num_of_loan"`
	DelayFromDueDate       []*int64   `json:"delay_from_due_date"`
	NumOfDelayedPayment    []*int64   `json:"num_of_delayed_payment"`
	ChangedCreditLimit     []*float64 `json:"changed_credit_limit"`
	NumCreditInquiries     []*int64   `json:"num_credit_inquiries"`
	AmountInvestedMonthly  []*float64 `json:"amount_invested_monthly"`
}

// Chart projects the records into chart series.
func (r *CreditReport) Chart() ChartData {
	n := len(r.Records)
	data := ChartData{
		Months:                 make([]int64, 0, n),
		OutstandingDebt:        make([]*float64, 0, n),
		CreditUtilizationRatio: make([]*float64, 0, n),
		TotalEMIPerMonth:       make([]*float64, 0, n),
		NumBankAccounts:        make([]*float64, 0, n),
		NumCreditCard:          make([]*int64, 0, n),
		InterestRate:           make([]*float64, 0, n),
		NumOfLoan:              make([]*float64, 0, n),
		DelayFromDueDate:       make([]*int64, 0, n),
		NumOfDelayedPayment:    make([]*int64, 0, n),
		ChangedCreditLimit:     make([]*float64, 0, n),
		NumCreditInquiries:     make([]*int64, 0, n),
		AmountInvestedMonthly:  make([]*float64, 0, n),
	}

	for _, rec := range r.Records {
		data.Months = append(data.Months, rec.MonthNo)
		data.OutstandingDebt = append(data.OutstandingDebt, rec.OutstandingDebt)
		data.CreditUtilizationRatio = append(data.CreditUtilizationRatio, rec.CreditUtilizationRatio)
		data.TotalEMIPerMonth = append(data.TotalEMIPerMonth, rec.TotalEMIPerMonth)
		data.NumBankAccounts = append(data.NumBankAccounts, rec.NumBankAccounts)
		data.NumCreditCard = append(data.NumCreditCard, rec.NumCreditCard)
		data.InterestRate = append(data.InterestRate, rec.InterestRate)
		data.NumOfLoan = append(data.NumOfLoan, rec.NumOfLoan)
		data.DelayFromDueDate = append(data.DelayFromDueDate, rec.DelayFromDueDate)
		data.NumOfDelayedPayment = append(data.NumOfDelayedPayment, rec.NumOfDelayedPayment)
		data.ChangedCreditLimit = append(data.ChangedCreditLimit, rec.ChangedCreditLimit)
		data.NumCreditInquiries = append(data.NumCreditInquiries, rec.NumCreditInquiries)
		data.AmountInvestedMonthly = append(data.AmountInvestedMonthly, rec.AmountInvestedMonthly)
	}

	return data
}
