package models_test

import (
	"encoding/json"

	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNormalizeTransactionTags() {
	tests := []struct {
		raw  string
		tags []string
	}{
		{`{"transactionId": 1, "tags": ["food", " weekly ", ""]}`, []string{"food", "weekly"}},
		{`{"transactionId": 1, "tags": "food, weekly,,"}`, []string{"food", "weekly"}},
		{`{"transactionId": 1, "tags": null}`, []string{}},
		{`{"transactionId": 1}`, []string{}},
	}

	for _, tt := range tests {
		tx, ok := models.NormalizeTransaction(suite.record(tt.raw), suite.now)
		suite.Require().True(ok, tt.raw)
		assert.Equal(suite.T(), tt.tags, tx.Tags, tt.raw)
	}
}

func (suite *TestSuiteStandard) TestNormalizeTransaction() {
	tx, ok := models.NormalizeTransaction(suite.record(`{
		"id": 120,
		"amount": -42.1,
		"type": "Income",
		"date": "2024-05-14T09:12:00Z",
		"categoryId": 3,
		"accountId": 1,
		"description": "Refund",
		"isRecurring": 1,
		"recurringFrequency": "monthly"
	}`), suite.now)

	suite.Require().True(ok)
	assert.Equal(suite.T(), "42.1", tx.Amount.String())
	assert.Equal(suite.T(), models.Income, tx.Type)
	assert.Equal(suite.T(), "2024-05-14", tx.Date.String())
	assert.True(suite.T(), tx.IsRecurring)
	suite.Require().NotNil(tx.RecurringFrequency)
	assert.Equal(suite.T(), models.Monthly, *tx.RecurringFrequency)
	assert.Equal(suite.T(), "42.1", tx.Signed().String())
}

func (suite *TestSuiteStandard) TestTransactionSigned() {
	tx, _ := models.NormalizeTransaction(suite.record(`{"transactionId": 1, "amount": 10}`), suite.now)

	assert.Equal(suite.T(), models.Expense, tx.Type)
	assert.Equal(suite.T(), "-10", tx.Signed().String())
}

func (suite *TestSuiteStandard) TestTransactionRoundTrip() {
	first, ok := models.NormalizeTransaction(suite.record(`{
		"transactionId": 120,
		"amount": 42.1,
		"transactionType": "expense",
		"transactionDate": "2024-05-14",
		"categoryId": 3,
		"accountId": 1,
		"description": "Groceries",
		"merchant": "Corner Market",
		"tags": ["food", "weekly"]
	}`), suite.now)
	suite.Require().True(ok)

	p, err := first.Editable().Payload(first.ID)
	suite.Require().Nil(err)

	b, err := json.Marshal(p)
	suite.Require().Nil(err)
	assert.Contains(suite.T(), string(b), `"tags":"food,weekly"`)
	assert.Len(suite.T(), p.References(), 2)

	second, ok := models.NormalizeTransaction(suite.wire(p), suite.now)
	suite.Require().True(ok)
	suite.assertSameJSON(first, second)
}

func (suite *TestSuiteStandard) TestTransactionPayloadRecurring() {
	valid := models.TransactionEditable{
		Amount:      "10",
		Date:        "2024-05-14",
		CategoryID:  "3",
		AccountID:   "1",
		Description: "Rent",
		IsRecurring: "true",
	}

	_, err := valid.Payload(0)
	suite.assertLocal(err, "recurringFrequency: is required for recurring transactions")

	valid.RecurringFrequency = "monthly"
	p, err := valid.Payload(0)
	suite.Require().Nil(err)

	frequency, _ := suite.wire(p).String("recurringFrequency")
	assert.Equal(suite.T(), models.Monthly, frequency)
}

func (suite *TestSuiteStandard) TestTransferPayload() {
	p, err := models.Transfer{FromAccountID: "1", ToAccountID: "2", Amount: "250", Date: "2024-05-14"}.Payload()
	suite.Require().Nil(err)

	r := suite.wire(p)
	description, _ := r.String("description")
	assert.Equal(suite.T(), "Transfer", description)
	date, ok := r.String("date")
	assert.True(suite.T(), ok, "the transfer date is sent as date")
	assert.Equal(suite.T(), "2024-05-14", date)
	_, ok = r.String("transferDate")
	assert.False(suite.T(), ok)
	assert.Len(suite.T(), p.References(), 2)

	_, err = models.Transfer{FromAccountID: "1", ToAccountID: "1", Amount: "250", Date: "2024-05-14"}.Payload()
	suite.assertLocal(err, "toAccountId: must differ from fromAccountId")

	_, err = models.Transfer{FromAccountID: "1", ToAccountID: "2", Amount: "0", Date: "2024-05-14"}.Payload()
	suite.assertLocal(err, "amount: must be greater than zero")

	_, err = models.Transfer{FromAccountID: "1", ToAccountID: "2", Amount: "5", Date: "14.05.2024"}.Payload()
	suite.assertLocal(err, "date: must be a date in YYYY-MM-DD format")
}
