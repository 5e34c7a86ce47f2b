package controllers_test

import (
	"net/http"

	"github.com/pocketledger/dashboard/pkg/controllers"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/pkg/screens"
	"github.com/pocketledger/dashboard/test"
	"github.com/stretchr/testify/assert"
)

const loansJSON = `[
	{"loanId": 5, "loanName": "Car repair", "loanType": "Personal", "borrowerName": "Sam Doe", "originalAmount": 800, "currentBalance": 350, "paymentDueDay": 1, "startDate": "2024-02-01", "accountId": 1},
	{"loanId": 6, "loanName": "Tuition", "loanType": "Family", "borrowerName": "Alex Roe", "originalAmount": 2000, "currentBalance": 2500, "paymentDueDay": 45, "startDate": "2023-08-15", "isActive": false, "accountId": 2}
]`

var loan = models.LoanEditable{
	Name:           "Car repair",
	Borrower:       "Sam Doe",
	OriginalAmount: "800",
	StartDate:      "2024-02-01",
	AccountID:      "1",
}

func (suite *TestSuiteStandard) TestLoansList() {
	suite.backend.On("GET /Loans/", http.StatusOK, loansJSON)
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)

	recorder := suite.request(http.MethodGet, "/v1/loans", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var screen screens.Screen[models.Loan]
	test.DecodeResponse(suite.T(), &recorder, &screen)

	suite.Require().Len(screen.Items, 2)
	assert.Equal(suite.T(), int64(6), screen.Items[0].ID, "loans are sorted by start date")
	assert.Equal(suite.T(), "2000", screen.Items[0].CurrentBalance.String(), "the balance never exceeds the original amount")
	assert.False(suite.T(), screen.Items[0].IsActive)
	assert.Equal(suite.T(), "Sam Doe", screen.Items[1].Borrower)
	assert.Len(suite.T(), screen.Accounts, 2)
}

func (suite *TestSuiteStandard) TestLoansListByBorrower() {
	suite.backend.On("GET /Loans/", http.StatusOK, loansJSON)
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)

	recorder := suite.request(http.MethodGet, "/v1/loans?name=sam", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var screen screens.Screen[models.Loan]
	test.DecodeResponse(suite.T(), &recorder, &screen)

	suite.Require().Len(screen.Items, 1)
	assert.Equal(suite.T(), int64(5), screen.Items[0].ID)
}

func (suite *TestSuiteStandard) TestLoanCreateEmptyResponse() {
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)
	suite.backend.On("POST /Loans/", http.StatusCreated, ``)
	suite.backend.On("GET /Loans/", http.StatusOK, loansJSON)

	recorder := suite.request(http.MethodPost, "/v1/loans", loan)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.Response[models.Loan, models.Loan]
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(6), response.Data.ID, "the newest loan is the one with the highest id")

	posted := suite.backend.Received("POST /Loans/")
	suite.Require().Len(posted, 1)
	assert.JSONEq(suite.T(), `{
		"loanName": "Car repair",
		"loanType": "Personal",
		"borrowerName": "Sam Doe",
		"originalAmount": 800,
		"currentBalance": 800,
		"interestRate": 0,
		"paymentDueDay": 1,
		"startDate": "2024-02-01",
		"isActive": true,
		"accountId": 1
	}`, posted[0].Body)
}

func (suite *TestSuiteStandard) TestLoanCreateBalanceAboveOriginal() {
	invalid := loan
	invalid.CurrentBalance = "900"

	recorder := suite.request(http.MethodPost, "/v1/loans", invalid)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "currentBalance: must not exceed originalAmount", test.DecodeError(suite.T(), recorder.Body.Bytes()))
	assert.Empty(suite.T(), suite.backend.Requests())
}
