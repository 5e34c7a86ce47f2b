package models_test

import (
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNormalizeUser() {
	u := models.NormalizeUser(suite.record(`{"userId": 1, "email": "jo@example.com", "firstName": "Jo", "lastName": "Doe", "currency": "chf"}`))

	assert.Equal(suite.T(), models.User{ID: 1, Email: "jo@example.com", FirstName: "Jo", LastName: "Doe", Currency: "CHF"}, u)

	u = models.NormalizeUser(suite.record(`{}`))
	assert.Equal(suite.T(), models.DefaultCurrency, u.Currency)
}

func (suite *TestSuiteStandard) TestLoginValidate() {
	l, err := models.Login{Email: " jo@example.com ", Password: "secret"}.Validate()
	suite.Require().Nil(err)
	assert.Equal(suite.T(), "jo@example.com", l.Email)

	_, err = models.Login{Email: "jo", Password: "secret"}.Validate()
	suite.assertLocal(err, "email: must be an email address")

	_, err = models.Login{Email: "jo@example.com"}.Validate()
	suite.assertLocal(err, "password: is required")
}

func (suite *TestSuiteStandard) TestRegistrationValidate() {
	valid := models.Registration{Email: "jo@example.com", Password: "12345678", FirstName: "Jo", LastName: "Doe"}

	_, err := valid.Validate()
	suite.Require().Nil(err)

	r := valid
	r.Password = "short"
	_, err = r.Validate()
	suite.assertLocal(err, "password: must be at least 8 characters long")

	r = valid
	r.Email = "Jo <jo@example.com>"
	_, err = r.Validate()
	suite.assertLocal(err, "email: must be an email address")

	r = valid
	r.LastName = ""
	_, err = r.Validate()
	suite.assertLocal(err, "lastName: is required")
}

func (suite *TestSuiteStandard) TestProfileValidate() {
	p, err := models.ProfileEditable{FirstName: "Jo", LastName: "Doe"}.Validate()
	suite.Require().Nil(err)
	assert.Equal(suite.T(), "USD", p.Currency)

	_, err = models.ProfileEditable{FirstName: "Jo", LastName: "Doe", Currency: "Euro"}.Validate()
	suite.assertLocal(err, "currency: must be an ISO 4217 currency code")
}

func (suite *TestSuiteStandard) TestPasswordChangeValidate() {
	_, err := models.PasswordChange{CurrentPassword: "old-password", NewPassword: "new-password"}.Validate()
	suite.Require().Nil(err)

	_, err = models.PasswordChange{NewPassword: "new-password"}.Validate()
	suite.assertLocal(err, "currentPassword: is required")

	_, err = models.PasswordChange{CurrentPassword: "same-password", NewPassword: "same-password"}.Validate()
	suite.assertLocal(err, "newPassword: must differ from currentPassword")
}
