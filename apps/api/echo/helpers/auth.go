package helpers

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/brightacademy/backend/core"
	"github.com/brightacademy/backend/core/admin"
)

const claimsContextKey = "adminToken"

// Claims represents the authorization claims transmitted via a JWT.
// Subject carries the admin id; tokens are self-contained and expire on
// their own, there is no revocation list.
type Claims struct {
	jwt.StandardClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// NewJWTConfig returns the JWT auth middleware config guarding mutating
// endpoints.
func NewJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    claimsContextKey,
		Claims:        new(Claims),
		ErrorHandler:  jwtErrorHandler,
	}
}

func jwtErrorHandler(err error) error {
	if err == middleware.ErrJWTMissing {
		return ErrAccessDenied
	}
	return ErrTokenInvalid
}

func GetAdminClaims(adm admin.Admin, conf *core.Config) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   adm.ID.Hex(),
			ExpiresAt: now.Add(conf.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:  adm.Name,
		Email: adm.Email,
	}
}

// GenerateToken generates a signed JWT token string representing the admin Claims.
func GenerateToken(claims *Claims, conf *core.Config) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// Authenticate resolves credentials to a stored admin. Unknown emails and
// bad passwords fail the same way on purpose.
func Authenticate(ctx context.Context, email, pwd string, svc *admin.Service) (admin.Admin, error) {
	adm, err := svc.GetByEmail(ctx, email)
	if err != nil {
		if err == admin.ErrNotFound {
			return admin.Admin{}, ErrAuthenticationFailed
		}
		return admin.Admin{}, errors.Wrap(err, "finding admin by email")
	}
	if err = adm.CheckPassword(pwd); err != nil {
		return admin.Admin{}, ErrAuthenticationFailed
	}
	return adm, nil
}

func GetContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(claimsContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, ErrAccessDenied
}
