package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/user"
)

type userApi struct {
	conf *core.Config
	svc  *user.Service
}

func registerUserAPI(g *echo.Group, jwt echo.MiddlewareFunc, conf *core.Config, svc *user.Service) {
	api := userApi{conf: conf, svc: svc}

	g.POST("/login", api.login)
	g.GET("/me", api.me, jwt)
}

// Handlers

func (api *userApi) login(ctx echo.Context) error {
	var data user.LoginRequest
	if err := bindBody(ctx, &data); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(ctx.Request().Context(), data)
	if err != nil {
		if err == user.ErrInvalidCredentials {
			return err
		}
		return errors.Wrap(err, "authenticating")
	}
	token, err := GenerateToken(api.conf, NewClaims(api.conf, usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	profile := usr.Profile()
	return ctx.JSON(http.StatusOK, response{
		Success: true,
		Message: "Log masuk berjaya",
		User:    &profile,
		Token:   token,
	})
}

func (api *userApi) me(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}
	id, err := claims.UserID()
	if err != nil {
		return errInvalidToken.WithInternal(err)
	}

	usr, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if core.IsNotFound(err) {
			// the account was removed after the token was issued
			return errInvalidToken.WithInternal(err)
		}
		return errors.Wrap(err, "finding user by ID")
	}
	return sendData(ctx, usr.Profile())
}
