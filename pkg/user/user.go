package user

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"learnapp/pkg/common"
)

const maxNameLen = 254

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

type User struct {
	Id       int64     `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Password []byte    `json:"-"`
	Created  time.Time `json:"-"`
}

// NormalizeEmail lowercases the address and checks it parses.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", common.Validation("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || len(email) > maxNameLen {
		return "", common.Validation("enter a valid email address")
	}
	return email, nil
}

func ValidateUsername(username string) error {
	if username == "" {
		return common.Validation("username is required")
	}
	if len(username) > maxNameLen || !usernameRe.MatchString(username) {
		return common.Validation("only alphanumeric characters are allowed in username")
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return common.Validation("password is required")
	}
	return nil
}
