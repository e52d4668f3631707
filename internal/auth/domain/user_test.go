package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/pkg/apperr"
)

func TestRegistrationValidate(t *testing.T) {
	valid := Registration{Username: "asha", Password: "pw", ConfirmPassword: "pw", Age: "21", MobileNumber: "9876543210"}
	require.NoError(t, valid.Validate())
	assert.Equal(t, 21, valid.AgeValue())

	cases := []struct {
		name   string
		mutate func(r *Registration)
		msg    string
	}{
		{"missing field -> invalid", func(r *Registration) { r.Username = " " }, "Please fill in all fields."},
		{"password mismatch -> invalid", func(r *Registration) { r.ConfirmPassword = "other" }, "Passwords do not match!"},
		{"too young -> invalid", func(r *Registration) { r.Age = "15" }, "You must be at least 16 years old to sign up."},
		{"age not a number -> invalid", func(r *Registration) { r.Age = "old" }, "Age must be a number."},
		{"short mobile -> invalid", func(r *Registration) { r.MobileNumber = "12345" }, "Mobile number must be 10 digits."},
		{"mobile with letters -> invalid", func(r *Registration) { r.MobileNumber = "98765x3210" }, "Mobile number must be 10 digits."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			err := r.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestCredentialsValidate(t *testing.T) {
	assert.NoError(t, Credentials{Username: "a", Password: "b"}.Validate())
	assert.Error(t, Credentials{Username: "", Password: "b"}.Validate())
	assert.Error(t, Credentials{Username: "a"}.Validate())
}

func TestAgeUnmarshal(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"u1","age":"19"}`), &u))
	assert.Equal(t, Age(19), u.Age)

	require.NoError(t, json.Unmarshal([]byte(`{"_id":"u1","age":42}`), &u))
	assert.Equal(t, Age(42), u.Age)

	var fresh User
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"u1","age":null}`), &fresh))
	assert.Equal(t, Age(0), fresh.Age)
}

func TestUserComplete(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.Complete())
	assert.False(t, (&User{Username: "x"}).Complete())
	assert.True(t, (&User{ID: "u1"}).Complete())
}
