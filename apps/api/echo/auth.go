package echoapi

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mrsmranau/ehomeroom/core"
	"github.com/mrsmranau/ehomeroom/core/user"
)

const contextTokenKey = "token"

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.RegisteredClaims
	Username   string `json:"username"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	HomeroomID int64  `json:"homeroom_id,omitempty"`
}

func NewClaims(conf *core.Config, usr user.User) *Claims {
	now := time.Now()
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    conf.AppName,
			Subject:   strconv.FormatInt(usr.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(conf.JWTExpirationDelta)),
		},
		Username:   usr.Username,
		Name:       usr.NamaPenuh,
		Role:       usr.Role,
		HomeroomID: usr.HomeroomID.Int64,
	}
}

// UserID is the id of the authenticated user.
func (c Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

func (c Claims) IsAdmin() bool {
	return c.Role == user.RoleAdmin
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// jwtMiddleware rejects requests without a valid bearer token and stores the parsed token
// under contextTokenKey.
func jwtMiddleware(conf *core.Config) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: echojwt.AlgorithmHS256,
		ContextKey:    contextTokenKey,
		NewClaimsFunc: func(echo.Context) jwt.Claims { return new(Claims) },
		ErrorHandler: func(_ echo.Context, err error) error {
			return errInvalidToken.WithInternal(err)
		},
	})
}

func getContextClaims(ctx echo.Context) (*Claims, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return claims, nil
		}
	}
	return nil, errInvalidToken
}
