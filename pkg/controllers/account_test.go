package controllers_test

import (
	"net/http"

	"github.com/pocketledger/dashboard/pkg/controllers"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountsList() {
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)

	recorder := suite.request(http.MethodGet, "/v1/accounts?type=savings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		Items    []models.Account `json:"items"`
		Accounts []models.Account `json:"accounts"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Items, 1)
	assert.Equal(suite.T(), "Savings", response.Items[0].Name)
	assert.Equal(suite.T(), "4000", response.Items[0].Balance.String())
	assert.Equal(suite.T(), models.DefaultCurrency, response.Items[0].Currency)
	assert.Nil(suite.T(), response.Accounts, "the account screen has no account lookup")
}

func (suite *TestSuiteStandard) TestAccountCreateEmptyResponse() {
	suite.backend.On("POST /Accounts/", http.StatusCreated, ``)
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)

	recorder := suite.request(http.MethodPost, "/v1/accounts", models.AccountEditable{
		Name:    "Savings",
		Type:    "savings",
		Balance: "4000",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.Response[models.Account, models.Account]
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(2), response.Data.ID, "the newest account is the one with the highest id")

	posted := suite.backend.Received("POST /Accounts/")
	suite.Require().Len(posted, 1)
	assert.JSONEq(suite.T(), `{
		"accountName": "Savings",
		"accountType": "Savings",
		"balance": 4000,
		"currency": "USD",
		"isActive": true
	}`, posted[0].Body)
}

func (suite *TestSuiteStandard) TestAccountCreateInvalidCurrency() {
	recorder := suite.request(http.MethodPost, "/v1/accounts", models.AccountEditable{
		Name:     "Savings",
		Currency: "bitcoin",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "currency: must be an ISO 4217 currency code", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}
