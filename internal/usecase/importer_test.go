package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/creditscore/internal/domain/errors"
	"github.com/polkiloo/creditscore/internal/domain/model"
	testhelpers "github.com/polkiloo/creditscore/internal/test"
)

const (
	customersCSV = "customer_id,age,occupation,annual_income,payment_behaviour\n" +
		"CUS_1,23,Scientist,19114.12,Low_spent_Small_value_payments\n" +
		"CUS_2,40,Lawyer,50000,High_spent_Large_value_payments\n"
	recordsCSV = "customer_id,month,month_no,outstanding_debt\n" +
		"CUS_1,1,1,809.98\n" +
		"CUS_1,2,2,\n" +
		"CUS_2,1,1,12.5\n"
)

func TestImportUseCaseImport(t *testing.T) {
	importer := &testhelpers.CreditImporterStub{}
	uc := NewImportUseCase(importer, discardLogger())

	summary, err := uc.Import(context.Background(), strings.NewReader(customersCSV), strings.NewReader(recordsCSV))
	require.NoError(t, err)
	assert.Equal(t, model.ImportSummary{Customers: 2, Records: 3}, summary)
	require.Len(t, importer.Customers, 2)
	require.Len(t, importer.Records, 3)
	assert.Nil(t, importer.Records[1].OutstandingDebt)
}

func TestImportUseCaseRejectsInconsistentInput(t *testing.T) {
	importer := &testhelpers.CreditImporterStub{}
	uc := NewImportUseCase(importer, discardLogger())

	_, err := uc.Import(context.Background(),
		strings.NewReader(customersCSV),
		strings.NewReader("customer_id,month_no\nCUS_9,1\n"))
	require.ErrorIs(t, err, domainErrors.ErrInvalidInput)

	_, err = uc.Import(context.Background(),
		strings.NewReader(customersCSV+"CUS_1,30,Teacher,1,x\n"),
		strings.NewReader(recordsCSV))
	require.ErrorIs(t, err, domainErrors.ErrInvalidInput)

	assert.Empty(t, importer.Customers, "nothing is written when validation fails")
}

func TestImportUseCaseErrors(t *testing.T) {
	uc := NewImportUseCase(&testhelpers.CreditImporterStub{}, discardLogger())
	_, err := uc.Import(context.Background(), strings.NewReader("bad\n"), strings.NewReader(recordsCSV))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read customers")

	_, err = uc.Import(context.Background(), strings.NewReader(customersCSV), strings.NewReader("bad\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read records")

	storeErr := errors.New("copy failed")
	uc = NewImportUseCase(&testhelpers.CreditImporterStub{
		ImportFn: func(context.Context, []model.Customer, []model.CreditRecord) (model.ImportSummary, error) {
			return model.ImportSummary{}, storeErr
		},
	}, discardLogger())
	_, err = uc.Import(context.Background(), strings.NewReader(customersCSV), strings.NewReader(recordsCSV))
	require.ErrorIs(t, err, storeErr)
}
