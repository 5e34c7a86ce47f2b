package controllers_test

import (
	"net/http"

	"github.com/pocketledger/dashboard/pkg/controllers"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/pkg/screens"
	"github.com/pocketledger/dashboard/test"
	"github.com/stretchr/testify/assert"
)

const investmentsJSON = `[
	{"investmentId": 9, "investmentName": "World index fund", "investmentType": "ETF", "symbol": "VT", "quantity": 10, "purchasePrice": 100, "currentPrice": 110, "purchaseDate": "2023-11-02", "accountId": 1},
	{"investmentId": 10, "investmentName": "Bond ladder", "investmentType": "Bond", "quantity": 5, "purchasePrice": 20.5, "purchaseDate": "2024-01-10", "accountId": 2}
]`

var investment = models.InvestmentEditable{
	Name:          "Bond ladder",
	Type:          "bond",
	Quantity:      "5",
	PurchasePrice: "20.5",
	PurchaseDate:  "2024-01-10",
	AccountID:     "2",
}

func (suite *TestSuiteStandard) TestInvestmentsList() {
	suite.backend.On("GET /Investments/", http.StatusOK, investmentsJSON)
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)

	recorder := suite.request(http.MethodGet, "/v1/investments", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var screen screens.Screen[models.Investment]
	test.DecodeResponse(suite.T(), &recorder, &screen)

	suite.Require().Len(screen.Items, 2)
	assert.Equal(suite.T(), "Bond ladder", screen.Items[0].Name, "investments are sorted by name")
	assert.Equal(suite.T(), "20.5", screen.Items[0].CurrentPrice.String(), "a missing current price is the purchase price")
	assert.Equal(suite.T(), "102.5", screen.Items[0].TotalInvested.String())
	assert.Equal(suite.T(), "1100", screen.Items[1].CurrentValue.String())
	assert.Len(suite.T(), screen.Accounts, 2)
	assert.Empty(suite.T(), screen.Warnings)
}

func (suite *TestSuiteStandard) TestInvestmentCreate() {
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)
	suite.backend.On("POST /Investments/", http.StatusCreated, `{"investmentId": 10, "investmentName": "Bond ladder", "investmentType": "Bond", "quantity": 5, "purchasePrice": 20.5, "purchaseDate": "2024-01-10", "accountId": 2}`)
	suite.backend.On("GET /Investments/", http.StatusOK, investmentsJSON)

	recorder := suite.request(http.MethodPost, "/v1/investments", investment)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.Response[models.Investment, models.Investment]
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(10), response.Data.ID)
	assert.Equal(suite.T(), "102.5", response.Data.CurrentValue.String())
	assert.Len(suite.T(), response.Screen.Accounts, 2)

	posted := suite.backend.Received("POST /Investments/")
	suite.Require().Len(posted, 1)
	assert.JSONEq(suite.T(), `{
		"investmentName": "Bond ladder",
		"investmentType": "Bond",
		"quantity": 5,
		"purchasePrice": 20.5,
		"currentPrice": 20.5,
		"purchaseDate": "2024-01-10",
		"accountId": 2
	}`, posted[0].Body)
}

func (suite *TestSuiteStandard) TestInvestmentCreateUnknownAccount() {
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)

	unknown := investment
	unknown.AccountID = "9"

	recorder := suite.request(http.MethodPost, "/v1/investments", unknown)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "accountId: account 9 does not exist", test.DecodeError(suite.T(), recorder.Body.Bytes()))
	assert.Empty(suite.T(), suite.backend.Received("POST /Investments/"))
}
