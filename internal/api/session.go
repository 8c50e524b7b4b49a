package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/dojoaonde/internal/models"
)

var (
	errSessionMissing = errors.New("missing session cookie")
	errSessionInvalid = errors.New("invalid session token")
)

type sessionClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// startSession signs the user in. Without remember the cookie lives until the
// browser closes while the token itself still expires after defaultAuthTokenTTL.
func (handler *Handler) startSession(c *fiber.Ctx, user *models.User, remember bool) error {
	ttl := defaultAuthTokenTTL
	if remember {
		ttl = rememberAuthTokenTTL
	}

	token, err := handler.issueSessionToken(user.ID, ttl)
	if err != nil {
		return err
	}

	var expires time.Time
	if remember {
		expires = handler.currentTime().Add(ttl)
	}
	c.Cookie(handler.sessionCookie(token, expires))
	return nil
}

func (handler *Handler) endSession(c *fiber.Ctx) {
	c.Cookie(handler.sessionCookie("", handler.currentTime().Add(-time.Hour)))
}

func (handler *Handler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     authCookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  expires,
	}
}

func (handler *Handler) issueSessionToken(userID uint, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultAuthTokenTTL
	}
	now := handler.currentTime()

	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
}

// sessionUserID returns the user id carried by the request's session cookie.
func (handler *Handler) sessionUserID(c *fiber.Ctx) (uint, error) {
	value := strings.TrimSpace(c.Cookies(authCookieName))
	if value == "" {
		return 0, errSessionMissing
	}

	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (interface{}, error) {
		return handler.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(handler.currentTime),
	)
	if err != nil || claims.UserID == 0 {
		return 0, errSessionInvalid
	}
	return claims.UserID, nil
}
