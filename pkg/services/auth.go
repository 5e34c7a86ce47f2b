package services

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/pocketledger/dashboard/pkg/apiclient"
	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/pocketledger/dashboard/pkg/credentials"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/pkg/normalize"
	"github.com/rs/zerolog"
)

const invalidLogin = "Invalid email or password"

// Auth signs the user in and out and manages the profile.
type Auth struct {
	backend Backend
	auth    *apiclient.Client
	users   *apiclient.Client
}

func newAuth(b Backend) *Auth {
	return &Auth{
		backend: b,
		auth:    b.client("Auth"),
		users:   b.client("Users"),
	}
}

// Login signs the user in and stores the issued token.
func (a *Auth) Login(ctx context.Context, login models.Login) (models.User, error) {
	login, err := login.Validate()
	if err != nil {
		return models.User{}, err
	}

	resp, err := a.auth.Post(ctx, "login", login)
	if err != nil {
		return models.User{}, a.rejected(ctx, err)
	}

	return a.session(ctx, resp.Body, login.Email)
}

// Register creates an account for the user. If the backend issues a token
// right away, the user is signed in as well.
func (a *Auth) Register(ctx context.Context, registration models.Registration) (models.User, error) {
	registration, err := registration.Validate()
	if err != nil {
		return models.User{}, err
	}

	resp, err := a.auth.Post(ctx, "register", registration)
	if err != nil {
		return models.User{}, a.backend.classify(ctx, err)
	}

	user, err := a.session(ctx, resp.Body, registration.Email)
	if errors.Is(err, errNoToken) {
		return models.User{
			Email:     registration.Email,
			FirstName: registration.FirstName,
			LastName:  registration.LastName,
			Currency:  models.DefaultCurrency,
		}, nil
	}
	return user, err
}

// Logout forgets the stored credentials.
func (a *Auth) Logout(ctx context.Context) error {
	if err := a.backend.Store.Clear(ctx); err != nil {
		return apierrors.Local(err.Error())
	}
	return nil
}

// Profile returns the profile of the signed in user.
func (a *Auth) Profile(ctx context.Context) (models.User, error) {
	resp, err := a.users.Get(ctx, "profile")
	if err != nil {
		return models.User{}, a.backend.classify(ctx, err)
	}

	rec, ok := single(resp.Body, "user", "data")
	if !ok {
		return models.User{}, apierrors.Shape(errors.New("profile response is not a record"))
	}
	return models.NormalizeUser(rec), nil
}

// UpdateProfile changes the name and preferred currency of the user.
func (a *Auth) UpdateProfile(ctx context.Context, profile models.ProfileEditable) (models.User, error) {
	profile, err := profile.Validate()
	if err != nil {
		return models.User{}, err
	}

	resp, err := a.users.Put(ctx, "profile", profile)
	if err != nil {
		return models.User{}, a.backend.classify(ctx, err)
	}

	if rec, ok := single(resp.Body, "user", "data"); ok {
		return models.NormalizeUser(rec), nil
	}
	return a.Profile(ctx)
}

// ChangePassword replaces the password of the signed in user.
func (a *Auth) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	change, err := change.Validate()
	if err != nil {
		return err
	}

	if _, err := a.users.Post(ctx, "change-password", change); err != nil {
		return a.backend.classify(ctx, err)
	}
	return nil
}

var errNoToken = errors.New("the login response has no token")

// session stores the token of a login response and returns the user.
func (a *Auth) session(ctx context.Context, body []byte, email string) (models.User, error) {
	rec, ok := normalize.Parse(body)
	if !ok {
		return models.User{}, apierrors.Shape(errNoToken)
	}

	if inner, ok := normalize.Parse(rec["data"]); ok {
		rec = inner
	}

	token, ok := rec.String("token", "accessToken", "jwt")
	if !ok {
		return models.User{}, apierrors.Shape(errNoToken)
	}

	user := models.User{Email: email, Currency: models.DefaultCurrency}
	if inner, ok := normalize.Parse(rec["user"]); ok {
		user = models.NormalizeUser(inner)
	} else if id, ok := rec.Int64("userId", "id"); ok {
		user.ID = id
	}

	userID := credentials.UserIDFromToken(token)
	if user.ID > 0 {
		userID = strconv.FormatInt(user.ID, 10)
	}

	if err := a.backend.Store.Set(ctx, credentials.Credentials{Token: token, UserID: userID}); err != nil {
		return models.User{}, apierrors.Local(err.Error())
	}

	zerolog.Ctx(ctx).Info().Str("user", userID).Msg("signed in")
	return user, nil
}

// rejected classifies a failed login. A 401 here means wrong credentials,
// not an expired session; the stored session is left alone.
func (a *Auth) rejected(ctx context.Context, err error) error {
	var exchange *apiclient.ExchangeError
	if errors.As(err, &exchange) && exchange.Response != nil && exchange.Response.Status == http.StatusUnauthorized {
		return &apierrors.Error{
			Category: apierrors.AuthError,
			Message:  invalidLogin,
			Status:   http.StatusUnauthorized,
			Err:      err,
		}
	}
	return a.backend.classify(ctx, err)
}
