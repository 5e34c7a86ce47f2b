package controllers_test

import (
	"context"
	"net/http"

	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/pocketledger/dashboard/pkg/controllers"
	"github.com/pocketledger/dashboard/pkg/httputil"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestLogin() {
	suite.signOut()
	suite.backend.On("POST /Auth/login", http.StatusOK, `{"token": "fresh", "user": {"id": 5, "email": "jo@example.com", "firstName": "Jo", "lastName": "Doe", "currency": "eur"}}`)

	recorder := suite.request(http.MethodPost, "/v1/auth/login", models.Login{Email: " jo@example.com ", Password: "secret password"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(5), response.Data.ID)
	assert.Equal(suite.T(), "EUR", response.Data.Currency)

	creds, err := suite.store.Get(context.Background())
	suite.Require().Nil(err)
	assert.Equal(suite.T(), "fresh", creds.Token)
	assert.Equal(suite.T(), "5", creds.UserID)

	posted := suite.backend.Received("POST /Auth/login")
	suite.Require().Len(posted, 1)
	assert.Empty(suite.T(), posted[0].Header.Get("Authorization"))
}

func (suite *TestSuiteStandard) TestLoginRejected() {
	suite.signOut()
	suite.backend.On("POST /Auth/login", http.StatusUnauthorized, `{"message": "bad credentials"}`)

	recorder := suite.request(http.MethodPost, "/v1/auth/login", models.Login{Email: "jo@example.com", Password: "wrong password"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	assert.Empty(suite.T(), recorder.Header().Get("Refresh"), "a failed sign in stays on the sign in screen")

	var e httputil.HTTPError
	test.DecodeResponse(suite.T(), &recorder, &e)
	assert.Equal(suite.T(), "Invalid email or password", e.Error)
	assert.Equal(suite.T(), apierrors.AuthError, e.Category)
	assert.Nil(suite.T(), e.Redirect)
}

func (suite *TestSuiteStandard) TestLoginRejectedWhileSignedIn() {
	suite.backend.On("POST /Auth/login", http.StatusUnauthorized, ``)

	recorder := suite.request(http.MethodPost, "/v1/auth/login", models.Login{Email: "jo@example.com", Password: "wrong password"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	assert.Empty(suite.T(), recorder.Header().Get("Refresh"))
	assert.Equal(suite.T(), "Invalid email or password", test.DecodeError(suite.T(), recorder.Body.Bytes()))
	assert.True(suite.T(), suite.signedIn(), "the current session survives a mistyped password")
}

func (suite *TestSuiteStandard) TestLoginInvalidEmail() {
	recorder := suite.request(http.MethodPost, "/v1/auth/login", models.Login{Email: "not an email", Password: "secret password"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Empty(suite.T(), suite.backend.Requests())
}

func (suite *TestSuiteStandard) TestRegister() {
	suite.signOut()
	suite.backend.On("POST /Auth/register", http.StatusCreated, `{"message": "Registration successful"}`)

	recorder := suite.request(http.MethodPost, "/v1/auth/register", models.Registration{
		Email:     "jo@example.com",
		Password:  "long enough password",
		FirstName: "Jo",
		LastName:  "Doe",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "jo@example.com", response.Data.Email)
	assert.Equal(suite.T(), "USD", response.Data.Currency)
	assert.False(suite.T(), suite.signedIn(), "no token was issued")
}

func (suite *TestSuiteStandard) TestRegisterShortPassword() {
	recorder := suite.request(http.MethodPost, "/v1/auth/register", models.Registration{
		Email:     "jo@example.com",
		Password:  "short",
		FirstName: "Jo",
		LastName:  "Doe",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()), "password")
}

func (suite *TestSuiteStandard) TestLogout() {
	recorder := suite.request(http.MethodPost, "/v1/auth/logout", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.False(suite.T(), suite.signedIn())
	assert.Empty(suite.T(), suite.backend.Requests())
}
