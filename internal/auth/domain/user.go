package domain

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/dwikikusuma/storefront/pkg/apperr"
)

// LoggedOutMessage is shown after any forced logout.
const LoggedOutMessage = "You are logged out, try again to login."

const MinSignupAge = 16

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

type User struct {
	ID           string `json:"_id"`
	Username     string `json:"username"`
	Age          Age    `json:"age,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}

// Complete reports whether the record can back a session.
func (u *User) Complete() bool {
	return u != nil && u.ID != ""
}

// Age decodes from either a JSON number or a numeric string; signup forms
// historically sent it as text.
type Age int

func (a *Age) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		*a = 0
		return nil
	}

	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		s = string(b)
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return err
	}
	*a = Age(int(f))
	return nil
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return apperr.Invalid("Please enter your username and password.")
	}
	return nil
}

type Registration struct {
	Username        string
	Password        string
	ConfirmPassword string
	Age             string
	MobileNumber    string
}

func (r Registration) Validate() error {
	if strings.TrimSpace(r.Username) == "" || r.Password == "" || strings.TrimSpace(r.Age) == "" || r.MobileNumber == "" {
		return apperr.Invalid("Please fill in all fields.")
	}
	if r.Password != r.ConfirmPassword {
		return apperr.Invalid("Passwords do not match!")
	}

	age, err := strconv.Atoi(strings.TrimSpace(r.Age))
	if err != nil {
		return apperr.Invalid("Age must be a number.")
	}
	if age < MinSignupAge {
		return apperr.Invalidf("You must be at least %d years old to sign up.", MinSignupAge)
	}

	if !mobilePattern.MatchString(r.MobileNumber) {
		return apperr.Invalid("Mobile number must be 10 digits.")
	}
	return nil
}

// AgeValue is the parsed age; call after Validate.
func (r Registration) AgeValue() int {
	n, _ := strconv.Atoi(strings.TrimSpace(r.Age))
	return n
}

// LoginResult is what the backend returns for a successful login.
type LoginResult struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
