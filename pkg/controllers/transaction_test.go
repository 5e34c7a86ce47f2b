package controllers_test

import (
	"net/http"

	"github.com/pocketledger/dashboard/pkg/controllers"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/pkg/screens"
	"github.com/pocketledger/dashboard/test"
	"github.com/stretchr/testify/assert"
)

const (
	accountsJSON = `{"accounts": [
		{"accountId": 1, "accountName": "Checking", "accountType": "Checking", "balance": 1520.75},
		{"accountId": 2, "accountName": "Savings", "accountType": "Savings", "balance": "4000"}
	]}`
	transactionsJSON = `[
		{"transactionId": 11, "amount": 42.1, "transactionType": "expense", "transactionDate": "2024-05-10", "description": "Groceries", "merchant": "Corner Store", "categoryId": 3, "accountId": 1},
		{"transactionId": 12, "amount": 3100, "transactionType": "income", "transactionDate": "2024-05-01", "description": "Salary", "categoryId": 5, "accountId": 1},
		{"transactionId": 13, "amount": 60, "transactionType": "expense", "transactionDate": "2024-04-28", "description": "Fuel", "categoryId": 4, "accountId": 2}
	]`
)

func (suite *TestSuiteStandard) TestTransactionsList() {
	suite.backend.On("GET /Transactions/", http.StatusOK, transactionsJSON)
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)
	suite.backend.On("GET /Categories/", http.StatusOK, categoriesJSON)

	recorder := suite.request(http.MethodGet, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var screen screens.Screen[models.Transaction]
	test.DecodeResponse(suite.T(), &recorder, &screen)

	suite.Require().Len(screen.Items, 3)
	assert.Equal(suite.T(), int64(11), screen.Items[0].ID, "newest transactions come first")
	assert.Len(suite.T(), screen.Accounts, 2)
	assert.Len(suite.T(), screen.Categories, 2)
}

func (suite *TestSuiteStandard) TestTransactionsListType() {
	suite.backend.On("GET /Transactions/", http.StatusOK, transactionsJSON)
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)
	suite.backend.On("GET /Categories/", http.StatusOK, categoriesJSON)

	recorder := suite.request(http.MethodGet, "/v1/transactions?type=Income", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var screen screens.Screen[models.Transaction]
	test.DecodeResponse(suite.T(), &recorder, &screen)

	suite.Require().Len(screen.Items, 1)
	assert.Equal(suite.T(), "Salary", screen.Items[0].Description)
}

func (suite *TestSuiteStandard) TestTransactionsListBackendDown() {
	suite.backend.Close()

	recorder := suite.request(http.MethodGet, "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var screen screens.Screen[models.Transaction]
	test.DecodeResponse(suite.T(), &recorder, &screen)

	assert.Empty(suite.T(), screen.Items)
	suite.Require().Len(screen.Warnings, 3)
	for _, w := range screen.Warnings {
		assert.Contains(suite.T(), w.Message, "internet connection", w.Part)
	}
}

func (suite *TestSuiteStandard) TestTransfer() {
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)
	suite.backend.On("POST /Transactions/transfer", http.StatusOK, `{"transactions": [
		{"transactionId": 21, "amount": 250, "transactionType": "expense", "transactionDate": "2024-05-14", "description": "Move to savings", "accountId": 1},
		{"transactionId": 22, "amount": 250, "transactionType": "income", "transactionDate": "2024-05-14", "description": "Move to savings", "accountId": 2}
	]}`)
	suite.backend.On("GET /Transactions/", http.StatusOK, transactionsJSON)
	suite.backend.On("GET /Categories/", http.StatusOK, categoriesJSON)

	recorder := suite.request(http.MethodPost, "/v1/transactions/transfer", map[string]any{
		"fromAccountId": 1,
		"toAccountId":   "2",
		"amount":        250,
		"description":   "Move to savings",
		"date":          "2024-05-14",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.Response[[]models.Transaction, models.Transaction]
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), int64(21), response.Data[0].ID)
	assert.Len(suite.T(), response.Screen.Items, 3)

	posted := suite.backend.Received("POST /Transactions/transfer")
	suite.Require().Len(posted, 1)
	assert.JSONEq(suite.T(), `{
		"fromAccountId": 1,
		"toAccountId": 2,
		"amount": 250,
		"description": "Move to savings",
		"date": "2024-05-14"
	}`, posted[0].Body)
}

func (suite *TestSuiteStandard) TestTransferEmptyResponse() {
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)
	suite.backend.On("POST /Transactions/transfer", http.StatusNoContent, ``)
	suite.backend.On("GET /Transactions/", http.StatusOK, `[]`)
	suite.backend.On("GET /Categories/", http.StatusOK, `[]`)

	recorder := suite.request(http.MethodPost, "/v1/transactions/transfer", models.Transfer{
		FromAccountID: "1",
		ToAccountID:   "2",
		Amount:        "10",
		Date:          "2024-05-14",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	assert.Contains(suite.T(), recorder.Body.String(), `"data":[]`)
}

func (suite *TestSuiteStandard) TestTransferSameAccount() {
	recorder := suite.request(http.MethodPost, "/v1/transactions/transfer", models.Transfer{
		FromAccountID: "1",
		ToAccountID:   "1",
		Amount:        "10",
		Date:          "2024-05-14",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "toAccountId: must differ from fromAccountId", test.DecodeError(suite.T(), recorder.Body.Bytes()))
	assert.Empty(suite.T(), suite.backend.Requests())
}

func (suite *TestSuiteStandard) TestTransferUnknownAccount() {
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)

	recorder := suite.request(http.MethodPost, "/v1/transactions/transfer", models.Transfer{
		FromAccountID: "1",
		ToAccountID:   "5",
		Amount:        "10",
		Date:          "2024-05-14",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "toAccountId: account 5 does not exist", test.DecodeError(suite.T(), recorder.Body.Bytes()))
	assert.Empty(suite.T(), suite.backend.Received("POST /Transactions/transfer"))
}
