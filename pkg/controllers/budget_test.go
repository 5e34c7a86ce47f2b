package controllers_test

import (
	"net/http"

	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/pocketledger/dashboard/pkg/controllers"
	"github.com/pocketledger/dashboard/pkg/httputil"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/pkg/screens"
	"github.com/pocketledger/dashboard/test"
	"github.com/stretchr/testify/assert"
)

const (
	budgetsJSON = `[
		{"budgetId": 7, "budgetName": "Food", "budgetAmount": 150.5, "budgetPeriod": "Monthly", "startDate": "2024-05-01", "endDate": "2024-05-31", "categoryId": 3},
		{"budgetId": 8, "budgetName": "Car", "budgetAmount": 90, "budgetPeriod": "Monthly", "startDate": "2024-05-01", "endDate": "2024-05-31", "categoryId": 4}
	]`
	categoriesJSON = `[
		{"categoryId": 3, "categoryName": "Groceries", "categoryType": "expense"},
		{"categoryId": 4, "categoryName": "Transport", "categoryType": "expense"}
	]`
)

var budget = models.BudgetEditable{
	Name:       "Food",
	Amount:     "150.5",
	Period:     "Monthly",
	StartDate:  "2024-05-01",
	CategoryID: "3",
}

func (suite *TestSuiteStandard) TestBudgetsList() {
	suite.backend.On("GET /Budgets/", http.StatusOK, budgetsJSON)
	suite.backend.On("GET /Categories/", http.StatusOK, categoriesJSON)

	recorder := suite.request(http.MethodGet, "/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var screen screens.Screen[models.Budget]
	test.DecodeResponse(suite.T(), &recorder, &screen)

	suite.Require().Len(screen.Items, 2)
	assert.Equal(suite.T(), "Car", screen.Items[0].Name, "budgets are sorted by name")
	assert.Equal(suite.T(), "150.5", screen.Items[1].Amount.String())
	assert.Len(suite.T(), screen.Categories, 2)
	assert.Empty(suite.T(), screen.Warnings)
}

func (suite *TestSuiteStandard) TestBudgetsListQuery() {
	suite.backend.On("GET /Budgets/", http.StatusOK, budgetsJSON)
	suite.backend.On("GET /Categories/", http.StatusOK, categoriesJSON)

	recorder := suite.request(http.MethodGet, "/v1/budgets?name=fo&sort=amount&order=desc", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var screen screens.Screen[models.Budget]
	test.DecodeResponse(suite.T(), &recorder, &screen)

	suite.Require().Len(screen.Items, 1)
	assert.Equal(suite.T(), int64(7), screen.Items[0].ID)
}

func (suite *TestSuiteStandard) TestBudgetsListLookupWarning() {
	suite.backend.On("GET /Budgets/", http.StatusOK, budgetsJSON)
	suite.backend.On("GET /Categories/", http.StatusInternalServerError, ``)

	recorder := suite.request(http.MethodGet, "/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var screen screens.Screen[models.Budget]
	test.DecodeResponse(suite.T(), &recorder, &screen)

	assert.Len(suite.T(), screen.Items, 2)
	assert.Empty(suite.T(), screen.Categories)
	suite.Require().Len(screen.Warnings, 1)
	assert.Equal(suite.T(), "categories", screen.Warnings[0].Part)
	assert.Equal(suite.T(), apierrors.ServerError, screen.Warnings[0].Category)
}

func (suite *TestSuiteStandard) TestBudgetsListSessionExpired() {
	suite.backend.On("GET /Budgets/", http.StatusUnauthorized, `{"message": "token expired"}`)
	suite.backend.On("GET /Categories/", http.StatusOK, categoriesJSON)

	recorder := suite.request(http.MethodGet, "/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	assert.Equal(suite.T(), "2; url=/login", recorder.Header().Get("Refresh"))

	var e httputil.HTTPError
	test.DecodeResponse(suite.T(), &recorder, &e)
	assert.Equal(suite.T(), apierrors.AuthError, e.Category)
	suite.Require().NotNil(e.Redirect)
	assert.Equal(suite.T(), "/login", e.Redirect.Location)

	assert.False(suite.T(), suite.signedIn(), "the session must be forgotten")
}

func (suite *TestSuiteStandard) TestBudgetCreate() {
	suite.backend.On("GET /Categories/", http.StatusOK, categoriesJSON)
	suite.backend.On("POST /Budgets/", http.StatusCreated, `{"budgetId": 7, "budgetName": "Food", "budgetAmount": 150.5, "budgetPeriod": "Monthly", "startDate": "2024-05-01", "endDate": "2024-05-31", "categoryId": 3}`)
	suite.backend.On("GET /Budgets/", http.StatusOK, budgetsJSON)

	recorder := suite.request(http.MethodPost, "/v1/budgets", budget)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.Response[models.Budget, models.Budget]
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(7), response.Data.ID)
	assert.Equal(suite.T(), "2024-05-31", response.Data.EndDate.String())
	assert.Len(suite.T(), response.Screen.Items, 2)

	posted := suite.backend.Received("POST /Budgets/")
	suite.Require().Len(posted, 1)
	assert.JSONEq(suite.T(), `{
		"budgetName": "Food",
		"budgetAmount": 150.5,
		"budgetPeriod": "Monthly",
		"startDate": "2024-05-01",
		"endDate": "2024-05-31",
		"alertThreshold": 80,
		"categoryId": 3
	}`, posted[0].Body)
	assert.Equal(suite.T(), "Bearer token", posted[0].Header.Get("Authorization"))
}

func (suite *TestSuiteStandard) TestBudgetCreateInvalid() {
	invalid := budget
	invalid.Name = "  "

	recorder := suite.request(http.MethodPost, "/v1/budgets", invalid)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "budgetName: is required", test.DecodeError(suite.T(), recorder.Body.Bytes()))
	assert.Empty(suite.T(), suite.backend.Requests(), "nothing may be sent for invalid input")
}

func (suite *TestSuiteStandard) TestBudgetCreateUnknownCategory() {
	suite.backend.On("GET /Categories/", http.StatusOK, categoriesJSON)

	unknown := budget
	unknown.CategoryID = "9"

	recorder := suite.request(http.MethodPost, "/v1/budgets", unknown)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "categoryId: category 9 does not exist", test.DecodeError(suite.T(), recorder.Body.Bytes()))
	assert.Empty(suite.T(), suite.backend.Received("POST /Budgets/"))
}

func (suite *TestSuiteStandard) TestBudgetCreateBrokenBody() {
	recorder := suite.request(http.MethodPost, "/v1/budgets", `{"name": `)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), httputil.ErrInvalidBody.Message, test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestBudgetCreateBackendValidation() {
	suite.backend.On("GET /Categories/", http.StatusOK, categoriesJSON)
	suite.backend.On("POST /Budgets/", http.StatusUnprocessableEntity, `{"errors": {"budgetAmount": ["must be below 1000000"]}}`)

	recorder := suite.request(http.MethodPost, "/v1/budgets", budget)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnprocessableEntity)

	var e httputil.HTTPError
	test.DecodeResponse(suite.T(), &recorder, &e)
	assert.Equal(suite.T(), apierrors.ValidationError, e.Category)
	assert.Equal(suite.T(), "budgetAmount: must be below 1000000", e.Error)
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	suite.backend.On("GET /Categories/", http.StatusOK, categoriesJSON)
	suite.backend.On("PUT /Budgets/7", http.StatusNoContent, ``)
	suite.backend.On("GET /Budgets/", http.StatusOK, budgetsJSON)

	changed := budget
	changed.Amount = "-200"

	recorder := suite.request(http.MethodPut, "/v1/budgets/7", changed)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.Response[models.Budget, models.Budget]
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(7), response.Data.ID)
	assert.Equal(suite.T(), "200", response.Data.Amount.String(), "amounts are stored as magnitudes")

	put := suite.backend.Received("PUT /Budgets/7")
	suite.Require().Len(put, 1)
	assert.Contains(suite.T(), put[0].Body, `"budgetId":7`)
}

func (suite *TestSuiteStandard) TestBudgetUpdateInvalidID() {
	for _, id := range []string{"0", "-1", "abc"} {
		recorder := suite.request(http.MethodPut, "/v1/budgets/"+id, budget)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
	assert.Empty(suite.T(), suite.backend.Requests())
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	suite.backend.On("DELETE /Budgets/8", http.StatusNoContent, ``)
	suite.backend.On("GET /Budgets/", http.StatusOK, budgetsJSON)
	suite.backend.On("GET /Categories/", http.StatusOK, categoriesJSON)

	recorder := suite.request(http.MethodDelete, "/v1/budgets/8", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.Response[*models.Budget, models.Budget]
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Nil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Screen.Items, 2)
	assert.Len(suite.T(), suite.backend.Received("DELETE /Budgets/8"), 1)
}

func (suite *TestSuiteStandard) TestBudgetDeleteConflict() {
	suite.backend.On("DELETE /Budgets/8", http.StatusConflict, `{"message": "Budget is in use"}`)

	recorder := suite.request(http.MethodDelete, "/v1/budgets/8", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
	assert.Equal(suite.T(), "Budget is in use", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}
