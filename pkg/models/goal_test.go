package models_test

import (
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNormalizeGoal() {
	g, ok := models.NormalizeGoal(suite.record(`{"goalId": 2, "goalName": "Trip", "targetAmount": "-3000", "currentAmount": 500, "priority": "HIGH", "goalType": "purchase"}`), suite.now)

	suite.Require().True(ok)
	assert.Equal(suite.T(), "3000", g.TargetAmount.String())
	assert.Equal(suite.T(), "500", g.CurrentAmount.String())
	assert.Equal(suite.T(), models.High, g.Priority)
	assert.Equal(suite.T(), "Purchase", g.Type)
	assert.Equal(suite.T(), "2024-05-14", g.TargetDate.String())
	assert.Nil(suite.T(), g.Description)
}

func (suite *TestSuiteStandard) TestNormalizeGoalDefaults() {
	g, ok := models.NormalizeGoal(suite.record(`{"id": 2, "priority": "urgent"}`), suite.now)

	suite.Require().True(ok)
	assert.Equal(suite.T(), models.Medium, g.Priority)
	assert.Equal(suite.T(), "Savings", g.Type)
}

func (suite *TestSuiteStandard) TestGoalRoundTrip() {
	first, ok := models.NormalizeGoal(suite.record(`{"goalId": 2, "goalName": "Trip", "description": "Japan", "targetAmount": 3000, "currentAmount": 250.25, "targetDate": "2025-03-01", "priority": "Low"}`), suite.now)
	suite.Require().True(ok)

	p, err := first.Editable().Payload(first.ID)
	suite.Require().Nil(err)

	second, ok := models.NormalizeGoal(suite.wire(p), suite.now)
	suite.Require().True(ok)
	suite.assertSameJSON(first, second)
}

func (suite *TestSuiteStandard) TestGoalPayloadLocalErrors() {
	_, err := models.GoalEditable{Name: "Trip", TargetDate: "2025-03-01"}.Payload(0)
	suite.assertLocal(err, "targetAmount: is required")

	_, err = models.GoalEditable{Name: "Trip", TargetAmount: "10"}.Payload(0)
	suite.assertLocal(err, "targetDate: is required")

	_, err = models.GoalEditable{Name: "Trip", TargetAmount: "10", TargetDate: "2025-03-01", Priority: "Urgent"}.Payload(0)
	suite.assertLocal(err, "priority: must be one of Low, Medium, High")
}
