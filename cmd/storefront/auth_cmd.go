package main

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
)

func cmdLogin(ctx context.Context, a *app, args []string) error {
	fs := newFlags("login")
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	if err := parse(fs, args); err != nil {
		return err
	}

	msg, err := a.session.Login(ctx, domain.Credentials{Username: *username, Password: *password})
	if err != nil {
		return err
	}
	if msg != "" {
		fmt.Fprintln(a.out, msg)
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.Current().Username)
	return nil
}

func cmdSignup(ctx context.Context, a *app, args []string) error {
	fs := newFlags("signup")
	var reg domain.Registration
	fs.StringVar(&reg.Username, "username", "", "account username")
	fs.StringVar(&reg.Password, "password", "", "account password")
	fs.StringVar(&reg.ConfirmPassword, "confirm", "", "password confirmation")
	fs.StringVar(&reg.Age, "age", "", "age in years")
	fs.StringVar(&reg.MobileNumber, "mobile", "", "10 digit mobile number")
	if err := parse(fs, args); err != nil {
		return err
	}

	msg, err := a.session.Signup(ctx, reg)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	fmt.Fprintln(a.out, "You can now log in.")
	return nil
}

func cmdLogout(ctx context.Context, a *app, args []string) error {
	if err := parse(newFlags("logout"), args); err != nil {
		return err
	}
	a.session.Logout(ctx, "")
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func cmdWhoami(ctx context.Context, a *app, args []string) error {
	if err := parse(newFlags("whoami"), args); err != nil {
		return err
	}

	if msg := a.session.ConsumeAuthMessage(ctx); msg != "" {
		fmt.Fprintln(a.out, msg)
	}

	user := a.session.Current()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", user.Username, user.ID)
	fmt.Fprintf(a.out, "Cart: %d item(s)\n", a.cart.TotalQuantity())
	return nil
}

func cmdProfile(ctx context.Context, a *app, args []string) error {
	if err := parse(newFlags("profile"), args); err != nil {
		return err
	}
	if _, err := a.session.RequireUser(ctx); err != nil {
		return err
	}

	u, err := a.session.Profile(ctx)
	if err != nil {
		return fmt.Errorf("Failed to load profile: %w", err)
	}
	fmt.Fprintf(a.out, "Username: %s\n", u.Username)
	if u.Age > 0 {
		fmt.Fprintf(a.out, "Age:      %d\n", u.Age)
	}
	if u.MobileNumber != "" {
		fmt.Fprintf(a.out, "Mobile:   %s\n", u.MobileNumber)
	}
	fmt.Fprintf(a.out, "User ID:  %s\n", u.ID)
	return nil
}
