package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Accounts() AccountRepository
	Customers() CustomerRepository
	CreditRecords() CreditRecordRepository
	Importer() CreditImporter
}
