package controllers_test

import (
	"net/http"

	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/pocketledger/dashboard/pkg/screens"
	"github.com/pocketledger/dashboard/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) overviewBackend() {
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)
	suite.backend.On("GET /Transactions/", http.StatusOK, transactionsJSON)
	suite.backend.On("GET /Budgets/", http.StatusOK, budgetsJSON)
	suite.backend.On("GET /Goals/", http.StatusOK, `[{"goalId": 2, "goalName": "Holiday", "targetAmount": 2000, "currentAmount": 500, "targetDate": "2024-12-01"}]`)
	suite.backend.On("GET /Debts/", http.StatusOK, `[
		{"debtId": 4, "debtName": "Visa card", "originalAmount": 5000, "currentBalance": 3000, "nextPaymentDate": "2024-05-20", "accountId": 1},
		{"debtId": 5, "debtName": "Old loan", "originalAmount": 100, "currentBalance": 0, "nextPaymentDate": "2024-05-18", "isActive": false}
	]`)
	suite.backend.On("GET /Investments/", http.StatusOK, `[]`)
	suite.backend.On("GET /Loans/", http.StatusOK, `{"data": [{"loanId": 1, "loanName": "Sam", "borrowerName": "Sam", "originalAmount": 500, "currentBalance": 350, "startDate": "2024-01-10"}]}`)
}

func (suite *TestSuiteStandard) TestOverview() {
	suite.overviewBackend()

	recorder := suite.request(http.MethodGet, "/v1/overview", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var o screens.Overview
	test.DecodeResponse(suite.T(), &recorder, &o)

	suite.Require().Len(o.Accounts, 2)
	assert.Equal(suite.T(), "Checking", o.Accounts[0].Name)
	assert.Equal(suite.T(), "1520.75", o.Accounts[0].Balance.String())

	suite.Require().Len(o.Budgets, 2)
	assert.Equal(suite.T(), "Car", o.Budgets[0].Name)
	suite.Require().Len(o.Goals, 1)
	assert.Equal(suite.T(), "500", o.Goals[0].CurrentAmount.String())
	assert.Empty(suite.T(), o.Investments)
	suite.Require().Len(o.Loans, 1)
	assert.Equal(suite.T(), "350", o.Loans[0].CurrentBalance.String())

	suite.Require().Len(o.UpcomingPayments, 1, "inactive debts have no upcoming payment")
	assert.Equal(suite.T(), int64(4), o.UpcomingPayments[0].ID)

	suite.Require().Len(o.RecentTransactions, 3)
	assert.Equal(suite.T(), int64(11), o.RecentTransactions[0].ID)
	assert.Empty(suite.T(), o.Warnings)

	assert.NotContains(suite.T(), recorder.Body.String(), "totalBalance")
	assert.NotContains(suite.T(), recorder.Body.String(), "netWorth")
}

func (suite *TestSuiteStandard) TestOverviewPartialFailure() {
	suite.overviewBackend()
	suite.backend.On("GET /Investments/", http.StatusInternalServerError, ``)

	recorder := suite.request(http.MethodGet, "/v1/overview", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var o screens.Overview
	test.DecodeResponse(suite.T(), &recorder, &o)

	suite.Require().Len(o.Warnings, 1)
	assert.Equal(suite.T(), "investments", o.Warnings[0].Part)
	assert.Equal(suite.T(), apierrors.ServerError, o.Warnings[0].Category)
	assert.Len(suite.T(), o.Accounts, 2, "the other parts are still shown")
}

func (suite *TestSuiteStandard) TestOverviewSessionExpired() {
	suite.overviewBackend()
	suite.backend.On("GET /Goals/", http.StatusUnauthorized, ``)

	recorder := suite.request(http.MethodGet, "/v1/overview", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	assert.Equal(suite.T(), "2; url=/login", recorder.Header().Get("Refresh"))
	assert.False(suite.T(), suite.signedIn())
}
