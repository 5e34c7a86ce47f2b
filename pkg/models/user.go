package models

import (
	"net/mail"
	"strings"

	"github.com/pocketledger/dashboard/pkg/normalize"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// User is the profile of the signed in user.
type User struct {
	ID        int64  `json:"id" example:"1"`
	Email     string `json:"email" example:"jo@example.com"`
	FirstName string `json:"firstName" example:"Jo"`
	LastName  string `json:"lastName" example:"Doe"`
	Currency  string `json:"currency" example:"USD"`
}

// NormalizeUser builds a User from a backend record. Profiles are returned
// for the signed in user only, so a missing id is not fatal.
func NormalizeUser(r normalize.Record) User {
	id, _ := identify(r, "userId", "id")
	code, _ := r.String("currency", "preferredCurrency")

	return User{
		ID:        id,
		Email:     r.StringOr("", "email", "emailAddress"),
		FirstName: r.StringOr("", "firstName", "givenName"),
		LastName:  r.StringOr("", "lastName", "familyName"),
		Currency:  currencyOr(code, DefaultCurrency),
	}
}

// Login holds the credentials entered on the sign in form.
type Login struct {
	Email    string `json:"email" example:"jo@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

// Validate checks the form and returns it ready for submission.
func (l Login) Validate() (Login, error) {
	var c check

	l.Email = c.email("email", l.Email)
	if l.Password == "" {
		c.fail("password", "is required")
	}

	if c.err != nil {
		return Login{}, c.err
	}
	return l, nil
}

// Registration is the sign up form.
type Registration struct {
	Email     string `json:"email" example:"jo@example.com"`
	Password  string `json:"password" example:"correct horse battery staple"`
	FirstName string `json:"firstName" example:"Jo"`
	LastName  string `json:"lastName" example:"Doe"`
}

// Validate checks the form and returns it ready for submission.
func (r Registration) Validate() (Registration, error) {
	var c check

	r.Email = c.email("email", r.Email)
	r.Password = c.password("password", r.Password)
	r.FirstName = c.text("firstName", r.FirstName)
	r.LastName = c.text("lastName", r.LastName)

	if c.err != nil {
		return Registration{}, c.err
	}
	return r, nil
}

// ProfileEditable is the profile form.
type ProfileEditable struct {
	FirstName string `json:"firstName" example:"Jo"`
	LastName  string `json:"lastName" example:"Doe"`
	Currency  string `json:"currency" example:"EUR"`
}

// Validate checks the form and returns it ready for submission.
func (p ProfileEditable) Validate() (ProfileEditable, error) {
	var c check

	p.FirstName = c.text("firstName", p.FirstName)
	p.LastName = c.text("lastName", p.LastName)
	p.Currency = c.currency("currency", p.Currency)

	if c.err != nil {
		return ProfileEditable{}, c.err
	}
	return p, nil
}

// PasswordChange is the change password form.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" example:"correct horse battery staple"`
	NewPassword     string `json:"newPassword" example:"another horse battery staple"`
}

// Validate checks the form and returns it ready for submission.
func (p PasswordChange) Validate() (PasswordChange, error) {
	var c check

	if p.CurrentPassword == "" {
		c.fail("currentPassword", "is required")
	}
	p.NewPassword = c.password("newPassword", p.NewPassword)
	if p.NewPassword != "" && p.NewPassword == p.CurrentPassword {
		c.fail("newPassword", "must differ from currentPassword")
	}

	if c.err != nil {
		return PasswordChange{}, c.err
	}
	return p, nil
}

func (c *check) email(field, value string) string {
	value = c.text(field, value)
	if value == "" {
		return value
	}

	if _, err := mail.ParseAddress(value); err != nil || strings.ContainsAny(value, "<> ") {
		c.fail(field, "must be an email address")
	}
	return value
}

func (c *check) password(field, value string) string {
	if len(value) < MinPasswordLength {
		c.fail(field, "must be at least 8 characters long")
	}
	return value
}
