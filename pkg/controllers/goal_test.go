package controllers_test

import (
	"net/http"

	"github.com/pocketledger/dashboard/pkg/controllers"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/pkg/screens"
	"github.com/pocketledger/dashboard/test"
	"github.com/stretchr/testify/assert"
)

const goalsJSON = `{"goals": [
	{"goalId": 2, "goalName": "Emergency fund", "goalType": "Emergency", "targetAmount": 6000, "currentAmount": 1250, "targetDate": "2025-12-31", "priority": "High"},
	{"goalId": 3, "goalName": "Holiday", "targetAmount": 1500, "targetDate": "2024-09-01"}
]}`

func (suite *TestSuiteStandard) TestGoalsList() {
	suite.backend.On("GET /Goals/", http.StatusOK, goalsJSON)

	recorder := suite.request(http.MethodGet, "/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var screen screens.Screen[models.Goal]
	test.DecodeResponse(suite.T(), &recorder, &screen)

	suite.Require().Len(screen.Items, 2)
	assert.Equal(suite.T(), int64(3), screen.Items[0].ID, "goals are sorted by target date")
	assert.Equal(suite.T(), "Savings", screen.Items[0].Type)
	assert.Equal(suite.T(), models.Medium, screen.Items[0].Priority)
	assert.Equal(suite.T(), "1250", screen.Items[1].CurrentAmount.String())
	assert.Empty(suite.T(), screen.Warnings)
}

func (suite *TestSuiteStandard) TestGoalsListSortByAmount() {
	suite.backend.On("GET /Goals/", http.StatusOK, goalsJSON)

	recorder := suite.request(http.MethodGet, "/v1/goals?sort=targetAmount&order=desc", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var screen screens.Screen[models.Goal]
	test.DecodeResponse(suite.T(), &recorder, &screen)

	suite.Require().Len(screen.Items, 2)
	assert.Equal(suite.T(), int64(2), screen.Items[0].ID)
}

func (suite *TestSuiteStandard) TestGoalCreateEmptyResponse() {
	suite.backend.On("POST /Goals/", http.StatusCreated, ``)
	suite.backend.On("GET /Goals/", http.StatusOK, goalsJSON)

	recorder := suite.request(http.MethodPost, "/v1/goals", models.GoalEditable{
		Name:         "Holiday",
		TargetAmount: "1500",
		TargetDate:   "2024-09-01",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.Response[models.Goal, models.Goal]
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(3), response.Data.ID, "the newest goal is the one with the highest id")

	posted := suite.backend.Received("POST /Goals/")
	suite.Require().Len(posted, 1)
	assert.JSONEq(suite.T(), `{
		"goalName": "Holiday",
		"goalType": "Savings",
		"targetAmount": 1500,
		"currentAmount": 0,
		"targetDate": "2024-09-01",
		"priority": "Medium"
	}`, posted[0].Body)
}

func (suite *TestSuiteStandard) TestGoalCreateZeroTarget() {
	recorder := suite.request(http.MethodPost, "/v1/goals", models.GoalEditable{
		Name:         "Holiday",
		TargetAmount: "0",
		TargetDate:   "2024-09-01",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "targetAmount: must be greater than zero", test.DecodeError(suite.T(), recorder.Body.Bytes()))
	assert.Empty(suite.T(), suite.backend.Requests())
}
