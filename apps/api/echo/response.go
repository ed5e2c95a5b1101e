package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mrsmranau/ehomeroom/core/user"
)

// response is the envelope of every API reply.
type response struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	ID      int64             `json:"id,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	User    *user.Profile     `json:"user,omitempty"`
	Token   string            `json:"token,omitempty"`
}

func sendData(ctx echo.Context, data interface{}) error {
	return ctx.JSON(http.StatusOK, response{Success: true, Data: data})
}

func sendCreated(ctx echo.Context, msg string, id int64, data interface{}) error {
	return ctx.JSON(http.StatusOK, response{Success: true, Message: msg, ID: id, Data: data})
}

func sendMessage(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusOK, response{Success: true, Message: msg})
}
