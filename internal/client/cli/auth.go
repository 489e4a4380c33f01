package cli

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/ewasteportal/ewastecli/internal/client/api"
	"github.com/ewasteportal/ewastecli/internal/client/models"
	"github.com/ewasteportal/ewastecli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the session
// switches to the authenticated state and the role's home dashboard is
// rendered; on failure the backend's detail message is shown.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		a.notifier.Error(api.Detail(err, "Login failed"))
		return err
	}

	a.notifier.Success("Login successful!")
	return a.Home(ctx)
}

// Register prompts for the account fields and creates an account. Recycler
// accounts additionally carry the metadata of the center created alongside
// them. A successful registration logs the new account in immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	roleText, err := getSimpleText(a.reader, "Enter role (submitter, recycler)", os.Stdout)
	if err != nil {
		return err
	}
	role := models.ParseRole(roleText)

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	reg := models.Registration{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     role,
	}

	if role == models.RoleRecycler {
		if reg.CenterName, err = getSimpleText(a.reader, "Enter center name", os.Stdout); err != nil {
			return err
		}
		lat, err := a.readCoordinate("Enter center latitude")
		if err != nil {
			return err
		}
		lng, err := a.readCoordinate("Enter center longitude")
		if err != nil {
			return err
		}
		reg.CenterLatitude, reg.CenterLongitude = &lat, &lng
	}

	if err := a.session.Register(ctx, reg); err != nil {
		if errors.Is(err, common.ErrValidation) {
			a.notifier.Error(err.Error())
		} else {
			a.notifier.Error(api.Detail(err, "Registration failed"))
		}
		return err
	}

	a.notifier.Success("Registration successful!")
	return a.Home(ctx)
}

func (a *App) readCoordinate(prompt string) (float64, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		a.notifier.Error("Invalid coordinate: " + text)
		return 0, err
	}
	return value, nil
}

// Logout clears the stored credential and drops all dashboard snapshots.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.submitter.Leave()
	a.recycler.Leave()
	a.admin.Leave()
	a.notifier.Info("Logged out")
	return nil
}
