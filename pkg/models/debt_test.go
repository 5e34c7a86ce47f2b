package models_test

import (
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNormalizeDebtClamps() {
	tests := []struct {
		raw     string
		balance string
		day     int
	}{
		{`{"debtId": 1, "originalAmount": 1000, "currentBalance": 1200, "paymentDueDay": 40}`, "1000", 31},
		{`{"debtId": 1, "originalAmount": 1000, "currentBalance": -200, "paymentDueDay": 0}`, "200", 1},
		{`{"debtId": 1, "originalAmount": 1000, "currentBalance": 300, "paymentDueDay": "15"}`, "300", 15},
		{`{"debtId": 1, "originalAmount": 1000}`, "0", 1},
	}

	for _, tt := range tests {
		d, ok := models.NormalizeDebt(suite.record(tt.raw), suite.now)
		suite.Require().True(ok, tt.raw)
		assert.Equal(suite.T(), tt.balance, d.CurrentBalance.String(), tt.raw)
		assert.Equal(suite.T(), tt.day, d.PaymentDueDay, tt.raw)
	}
}

func (suite *TestSuiteStandard) TestNormalizeDebtDefaults() {
	d, ok := models.NormalizeDebt(suite.record(`{"id": 9}`), suite.now)

	suite.Require().True(ok)
	assert.Equal(suite.T(), "CreditCard", d.Type)
	assert.True(suite.T(), d.IsActive)
	assert.Nil(suite.T(), d.PayoffDate)
	assert.Equal(suite.T(), "2024-05-14", d.NextPaymentDate.String())
}

func (suite *TestSuiteStandard) TestDebtRoundTrip() {
	first, ok := models.NormalizeDebt(suite.record(`{
		"debtId": 4,
		"debtName": "Visa",
		"debtType": "CreditCard",
		"creditor": "First Bank",
		"originalAmount": 5000,
		"currentBalance": 3200.4,
		"interestRate": 19.99,
		"minimumPayment": 75,
		"paymentDueDay": 15,
		"nextPaymentDate": "2024-06-15",
		"payoffDate": "2026-01-15",
		"isActive": true,
		"accountId": 1
	}`), suite.now)
	suite.Require().True(ok)

	p, err := first.Editable().Payload(first.ID)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), []models.Reference{{Field: "accountId", Resource: models.AccountsResource, ID: 1}}, p.References())

	second, ok := models.NormalizeDebt(suite.wire(p), suite.now)
	suite.Require().True(ok)
	suite.assertSameJSON(first, second)
}

func (suite *TestSuiteStandard) TestDebtPayloadLocalErrors() {
	valid := models.DebtEditable{
		Name:            "Visa",
		Creditor:        "First Bank",
		OriginalAmount:  "1000",
		NextPaymentDate: "2024-06-15",
		AccountID:       "1",
	}

	p, err := valid.Payload(0)
	suite.Require().Nil(err)
	balance, _ := suite.wire(p).Decimal("currentBalance")
	assert.Equal(suite.T(), "1000", balance.String(), "the balance defaults to the original amount")

	e := valid
	e.CurrentBalance = "1500"
	_, err = e.Payload(0)
	suite.assertLocal(err, "currentBalance: must not exceed originalAmount")

	e = valid
	e.PaymentDueDay = "32"
	_, err = e.Payload(0)
	suite.assertLocal(err, "paymentDueDay: must be a whole number from 1 to 31")

	e = valid
	e.Creditor = ""
	_, err = e.Payload(0)
	suite.assertLocal(err, "creditor: is required")
}

func (suite *TestSuiteStandard) TestDebtPaymentPayload() {
	p, err := models.DebtPayment{PaymentDate: "2024-05-15", PaymentAmount: "-75"}.Payload()
	suite.Require().Nil(err)

	r := suite.wire(p)
	amount, _ := r.Decimal("paymentAmount")
	assert.Equal(suite.T(), "75", amount.String())
	date, _ := r.Date("paymentDate")
	assert.Equal(suite.T(), "2024-05-15", date.String())

	_, err = models.DebtPayment{PaymentDate: "2024-05-15"}.Payload()
	suite.assertLocal(err, "paymentAmount: is required")
}
