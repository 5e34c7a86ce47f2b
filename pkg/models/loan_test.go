package models_test

import (
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNormalizeLoan() {
	l, ok := models.NormalizeLoan(suite.record(`{
		"loanId": 5,
		"loanName": "Car repair",
		"borrower": "Sam",
		"principalAmount": 800,
		"currentBalance": 900,
		"paymentDueDay": 45,
		"startDate": "2024-02-01",
		"accountId": 1
	}`), suite.now)

	suite.Require().True(ok)
	assert.Equal(suite.T(), "Personal", l.Type)
	assert.Equal(suite.T(), "Sam", l.Borrower)
	assert.Equal(suite.T(), "800", l.OriginalAmount.String())
	assert.Equal(suite.T(), "800", l.CurrentBalance.String())
	assert.Equal(suite.T(), 31, l.PaymentDueDay)
	assert.Nil(suite.T(), l.DueDate)
	assert.True(suite.T(), l.IsActive)
}

func (suite *TestSuiteStandard) TestLoanRoundTrip() {
	first, ok := models.NormalizeLoan(suite.record(`{
		"loanId": 5,
		"loanName": "Car repair",
		"loanType": "Family",
		"borrowerName": "Sam",
		"borrowerEmail": "sam@example.com",
		"originalAmount": 800,
		"currentBalance": 350,
		"interestRate": 0,
		"paymentDueDay": 1,
		"startDate": "2024-02-01",
		"dueDate": "2024-12-01",
		"isActive": true,
		"accountId": 1
	}`), suite.now)
	suite.Require().True(ok)

	p, err := first.Editable().Payload(first.ID)
	suite.Require().Nil(err)

	second, ok := models.NormalizeLoan(suite.wire(p), suite.now)
	suite.Require().True(ok)
	suite.assertSameJSON(first, second)
}

func (suite *TestSuiteStandard) TestLoanPayloadLocalErrors() {
	valid := models.LoanEditable{
		Name:           "Car repair",
		Borrower:       "Sam",
		OriginalAmount: "800",
		StartDate:      "2024-02-01",
		AccountID:      "1",
	}

	_, err := valid.Payload(0)
	suite.Require().Nil(err)

	e := valid
	e.DueDate = "2024-01-01"
	_, err = e.Payload(0)
	suite.assertLocal(err, "dueDate: must not be before startDate")

	e = valid
	e.Borrower = ""
	_, err = e.Payload(0)
	suite.assertLocal(err, "borrowerName: is required")

	e = valid
	e.AccountID = "-1"
	_, err = e.Payload(0)
	suite.assertLocal(err, "accountId: must be a positive integer")
}
