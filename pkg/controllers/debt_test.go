package controllers_test

import (
	"net/http"

	"github.com/pocketledger/dashboard/pkg/controllers"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/test"
	"github.com/stretchr/testify/assert"
)

const debtsJSON = `[
	{"debtId": 4, "debtName": "Visa card", "debtType": "CreditCard", "creditor": "First Bank", "originalAmount": 5000, "currentBalance": 3125.4, "minimumPayment": 75, "paymentDueDay": 15, "nextPaymentDate": "2024-06-15", "accountId": 1}
]`

func (suite *TestSuiteStandard) TestDebtPayment() {
	suite.backend.On("POST /Debts/4/process-payment", http.StatusOK, `{"receiptId": "r-1"}`)
	suite.backend.On("GET /Debts/", http.StatusOK, debtsJSON)
	suite.backend.On("GET /Accounts/", http.StatusOK, accountsJSON)

	recorder := suite.request(http.MethodPost, "/v1/debts/4/payments", models.DebtPayment{
		PaymentDate:   "2024-05-14",
		PaymentAmount: "75",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.Response[models.Debt, models.Debt]
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(4), response.Data.ID)
	assert.Equal(suite.T(), "3125.4", response.Data.CurrentBalance.String())

	posted := suite.backend.Received("POST /Debts/4/process-payment")
	suite.Require().Len(posted, 1)
	assert.JSONEq(suite.T(), `{"paymentDate": "2024-05-14", "paymentAmount": 75}`, posted[0].Body)
}

func (suite *TestSuiteStandard) TestDebtPaymentZero() {
	recorder := suite.request(http.MethodPost, "/v1/debts/4/payments", models.DebtPayment{
		PaymentDate:   "2024-05-14",
		PaymentAmount: "0",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "paymentAmount: must be greater than zero", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestDebtPaymentInvalidID() {
	recorder := suite.request(http.MethodPost, "/v1/debts/x/payments", models.DebtPayment{
		PaymentDate:   "2024-05-14",
		PaymentAmount: "10",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
