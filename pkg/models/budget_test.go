package models_test

import (
	"encoding/json"

	"github.com/pocketledger/dashboard/internal/types"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNormalizeBudget() {
	b, ok := models.NormalizeBudget(suite.record(`{
		"budgetId": 7,
		"budgetName": "Food",
		"budgetAmount": -150.5,
		"budgetPeriod": "weekly",
		"startDate": "2024-05-01T00:00:00",
		"endDate": "2024-05-07",
		"alertThreshold": 90,
		"categoryId": "3"
	}`), suite.now)

	suite.Require().True(ok)
	assert.Equal(suite.T(), int64(7), b.ID)
	assert.Equal(suite.T(), "Food", b.Name)
	assert.Equal(suite.T(), "150.5", b.Amount.String())
	assert.Equal(suite.T(), models.Weekly, b.Period)
	assert.Equal(suite.T(), "2024-05-01", b.StartDate.String())
	assert.Equal(suite.T(), "2024-05-07", b.EndDate.String())
	assert.Equal(suite.T(), "90", b.AlertThreshold.String())
	assert.Equal(suite.T(), int64(3), b.CategoryID)
}

func (suite *TestSuiteStandard) TestNormalizeBudgetAliases() {
	b, ok := models.NormalizeBudget(suite.record(`{"id": 2, "name": "Rent", "amount": "900", "period": "Monthly"}`), suite.now)

	suite.Require().True(ok)
	assert.Equal(suite.T(), "Rent", b.Name)
	assert.Equal(suite.T(), "900", b.Amount.String())
}

func (suite *TestSuiteStandard) TestNormalizeBudgetDefaults() {
	b, ok := models.NormalizeBudget(suite.record(`{"budgetId": 1}`), suite.now)

	suite.Require().True(ok)
	assert.Equal(suite.T(), "", b.Name)
	assert.True(suite.T(), b.Amount.IsZero())
	assert.Equal(suite.T(), models.Monthly, b.Period)
	assert.Equal(suite.T(), "2024-05-14", b.StartDate.String())
	assert.Equal(suite.T(), "2024-06-13", b.EndDate.String())
	assert.Equal(suite.T(), "80", b.AlertThreshold.String())
	assert.Equal(suite.T(), int64(0), b.CategoryID)
}

func (suite *TestSuiteStandard) TestNormalizeBudgetEndBeforeStart() {
	b, _ := models.NormalizeBudget(suite.record(`{"budgetId": 1, "startDate": "2024-05-10", "endDate": "2024-05-01"}`), suite.now)

	assert.Equal(suite.T(), "2024-05-10", b.EndDate.String())
}

func (suite *TestSuiteStandard) TestNormalizeBudgetWithoutID() {
	for _, raw := range []string{`{}`, `{"budgetId": 0}`, `{"budgetId": -4}`, `{"budgetId": "abc"}`, `{"budgetId": 1.5}`} {
		_, ok := models.NormalizeBudget(suite.record(raw), suite.now)
		assert.False(suite.T(), ok, raw)
	}
}

func (suite *TestSuiteStandard) TestBudgetRoundTrip() {
	first, ok := models.NormalizeBudget(suite.record(`{
		"budgetId": 7,
		"budgetName": "Food",
		"budgetAmount": -150.5,
		"startDate": "2024-05-01",
		"categoryId": 3
	}`), suite.now)
	suite.Require().True(ok)

	payload, err := first.Editable().Payload(first.ID)
	suite.Require().Nil(err)

	b, err := json.Marshal(payload)
	suite.Require().Nil(err)
	assert.Contains(suite.T(), string(b), `"budgetAmount":150.5`)
	assert.Contains(suite.T(), string(b), `"budgetName":"Food"`)

	second, ok := models.NormalizeBudget(suite.wire(payload), suite.now)
	suite.Require().True(ok)
	suite.assertSameJSON(first, second)
}

func (suite *TestSuiteStandard) TestBudgetPayload() {
	p, err := models.BudgetEditable{
		Name:       " Food ",
		Amount:     "-20",
		Period:     "yearly",
		StartDate:  "2024-01-01",
		CategoryID: "3",
	}.Payload(0)
	suite.Require().Nil(err)

	r := suite.wire(p)
	_, hasID := r["budgetId"]
	assert.False(suite.T(), hasID, "zero ids are omitted")

	name, _ := r.String("budgetName")
	assert.Equal(suite.T(), "Food", name)
	end, _ := r.Date("endDate")
	assert.Equal(suite.T(), types.NewDate(2024, 12, 31), end)
	threshold, _ := r.Int64("alertThreshold")
	assert.Equal(suite.T(), int64(80), threshold)

	assert.Equal(suite.T(), []models.Reference{{Field: "categoryId", Resource: models.CategoriesResource, ID: 3}}, p.References())
}

func (suite *TestSuiteStandard) TestBudgetPayloadLocalErrors() {
	valid := models.BudgetEditable{
		Name:       "Food",
		Amount:     "100",
		StartDate:  "2024-05-01",
		EndDate:    "2024-05-31",
		CategoryID: "3",
	}

	tests := []struct {
		modify  func(*models.BudgetEditable)
		message string
	}{
		{func(e *models.BudgetEditable) { e.Name = "  " }, "budgetName: is required"},
		{func(e *models.BudgetEditable) { e.Amount = "" }, "budgetAmount: is required"},
		{func(e *models.BudgetEditable) { e.Amount = "lots" }, "budgetAmount: must be a number"},
		{func(e *models.BudgetEditable) { e.Amount = "0" }, "budgetAmount: must be greater than zero"},
		{func(e *models.BudgetEditable) { e.Period = "Fortnightly" }, "budgetPeriod: must be one of Daily, Weekly, Monthly, Yearly"},
		{func(e *models.BudgetEditable) { e.StartDate = "" }, "startDate: is required"},
		{func(e *models.BudgetEditable) { e.StartDate = "05/01/2024" }, "startDate: must be a date in YYYY-MM-DD format"},
		{func(e *models.BudgetEditable) { e.EndDate = "2024-04-30" }, "endDate: must not be before startDate"},
		{func(e *models.BudgetEditable) { e.CategoryID = "" }, "categoryId: is required"},
		{func(e *models.BudgetEditable) { e.CategoryID = "food" }, "categoryId: must be a positive integer"},
	}

	for _, tt := range tests {
		e := valid
		tt.modify(&e)

		p, err := e.Payload(0)
		assert.Nil(suite.T(), p, tt.message)
		suite.assertLocal(err, tt.message)
	}
}

func (suite *TestSuiteStandard) TestBudgetEditableFromJSON() {
	var e models.BudgetEditable
	err := json.Unmarshal([]byte(`{"name": "Food", "amount": 150.5, "categoryId": 3, "alertThreshold": null}`), &e)
	suite.Require().Nil(err)

	assert.Equal(suite.T(), models.FormValue("150.5"), e.Amount)
	assert.Equal(suite.T(), models.FormValue("3"), e.CategoryID)
	assert.Equal(suite.T(), models.FormValue(""), e.AlertThreshold)
}

func (suite *TestSuiteStandard) TestPeriodEnd() {
	start := types.NewDate(2024, 1, 31)

	assert.Equal(suite.T(), "2024-01-31", models.PeriodEnd(start, models.Daily).String())
	assert.Equal(suite.T(), "2024-02-06", models.PeriodEnd(start, models.Weekly).String())
	assert.Equal(suite.T(), "2024-03-01", models.PeriodEnd(start, models.Monthly).String())
	assert.Equal(suite.T(), "2025-01-30", models.PeriodEnd(start, models.Yearly).String())
}
