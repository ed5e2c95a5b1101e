package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/user"
)

const (
	msgSystemError  = "Ralat sistem"
	msgInvalidData  = "Data tidak sah"
	msgInvalidToken = "Sesi tidak sah atau telah tamat. Sila log masuk semula"
	msgForbidden    = "Akses ditolak"
)

var (
	errInvalidToken  = echo.NewHTTPError(http.StatusUnauthorized, msgInvalidToken)
	errHttpForbidden = echo.NewHTTPError(http.StatusForbidden, msgForbidden)

	// errMalformedBody is not an *echo.HTTPError: undecodable payloads are system errors.
	errMalformedBody = errors.New("malformed request body")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that renders our errors in the API envelope.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		res := response{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			if msg, ok := origErr.Message.(string); ok {
				res.Message = msg
			} else {
				res.Message = http.StatusText(code)
			}
		case *core.NotFoundError:
			code = http.StatusNotFound
			res.Message = origErr.Entity + " tidak dijumpai"
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			res.Message = msgInvalidData
			res.Errors = core.TranslateValidationErrors(origErr)
		case *core.ValidationError:
			code = http.StatusBadRequest
			res.Message = msgInvalidData
			if origErr.Fields != nil {
				res.Errors = make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					res.Errors[fErr.Field] = fErr.Error
				}
			} else {
				res.Message = origErr.Error()
			}
		default:
			if origErr == user.ErrInvalidCredentials {
				code = http.StatusUnauthorized
				res.Message = origErr.Error()
				break
			}

			// any other error is a server error
			code = http.StatusInternalServerError
			res.Message = msgSystemError

			var usr user.Profile
			if claims, cErr := getContextClaims(ctx); cErr == nil {
				usr.ID, _ = claims.UserID()
				usr.Username = claims.Username
				usr.NamaPenuh = claims.Name
				usr.Role = claims.Role
				usr.HomeroomID = null.NewInt64(claims.HomeroomID, claims.HomeroomID > 0)
			}
			logger.Error(msgSystemError, errors.Wrap(err, ctx.Request().Method+" "+ctx.Request().URL.Path), usr)

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, res)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
