package models_test

import (
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNormalizeInvestmentComputesTotals() {
	i, ok := models.NormalizeInvestment(suite.record(`{"investmentId": 9, "investmentType": "etf", "quantity": 10, "purchasePrice": 100, "currentPrice": 110.5}`), suite.now)

	suite.Require().True(ok)
	assert.Equal(suite.T(), "ETF", i.Type)
	assert.Equal(suite.T(), "1000", i.TotalInvested.String())
	assert.Equal(suite.T(), "1105", i.CurrentValue.String())
	assert.Equal(suite.T(), "105", i.Gain().String())
	assert.Nil(suite.T(), i.AccountID)
}

func (suite *TestSuiteStandard) TestNormalizeInvestmentBackendTotals() {
	i, ok := models.NormalizeInvestment(suite.record(`{"id": 9, "quantity": 10, "purchasePrice": 100, "totalInvested": 990, "currentValue": 900, "accountId": 2}`), suite.now)

	suite.Require().True(ok)
	assert.Equal(suite.T(), "100", i.CurrentPrice.String(), "the current price defaults to the purchase price")
	assert.Equal(suite.T(), "990", i.TotalInvested.String())
	assert.Equal(suite.T(), "-90", i.Gain().String())
	suite.Require().NotNil(i.AccountID)
	assert.Equal(suite.T(), int64(2), *i.AccountID)
}

func (suite *TestSuiteStandard) TestInvestmentPayload() {
	p, err := models.InvestmentEditable{Name: "Index", Quantity: "2", PurchasePrice: "50", PurchaseDate: "2023-11-02"}.Payload(0)
	suite.Require().Nil(err)
	assert.Empty(suite.T(), p.References())

	r := suite.wire(p)
	current, _ := r.Decimal("currentPrice")
	assert.Equal(suite.T(), "50", current.String())
	_, hasAccount := r["accountId"]
	assert.False(suite.T(), hasAccount)

	p, err = models.InvestmentEditable{Name: "Index", Quantity: "2", PurchaseDate: "2023-11-02", AccountID: "4"}.Payload(0)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), []models.Reference{{Field: "accountId", Resource: models.AccountsResource, ID: 4}}, p.References())

	_, err = models.InvestmentEditable{Name: "Index", Quantity: "0", PurchaseDate: "2023-11-02"}.Payload(0)
	suite.assertLocal(err, "quantity: must be greater than zero")
}
