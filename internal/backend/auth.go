package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
)

type signupRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Age          int    `json:"age"`
	MobileNumber string `json:"mobileNumber"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	var res domain.LoginResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", creds, &res, "Login failed"); err != nil {
		return domain.LoginResult{}, err
	}
	return res, nil
}

func (c *Client) Signup(ctx context.Context, reg domain.Registration) (string, error) {
	req := signupRequest{
		Username:     reg.Username,
		Password:     reg.Password,
		Age:          reg.AgeValue(),
		MobileNumber: reg.MobileNumber,
	}

	var res messageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/signup", req, &res, "Signup failed"); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, &u, "Failed to fetch profile data."); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
