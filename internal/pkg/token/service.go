package token

import (
	"errors"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"talent-match/internal/domain/user"
)

var ErrTokenInvalid = errors.New("token invalid")

// Claims carry the session user snapshot. Tokens deliberately have no exp
// claim: a minted token stays valid for as long as the session store holds
// it, and teardown is the only revocation path.
type Claims struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	Role   user.Role `json:"role"`

	jwtlib.RegisteredClaims
}

type Service interface {
	Generate(snap user.Snapshot) (string, error)
	Validate(tokenString string) (Claims, error)
}

type HMACService struct {
	secret []byte
}

func NewHMACService(secret string) *HMACService {
	return &HMACService{secret: []byte(secret)}
}

func (s *HMACService) Generate(snap user.Snapshot) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrTokenInvalid
	}

	c := Claims{
		UserID: snap.ID,
		Email:  snap.Email,
		Role:   snap.Role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject: snap.ID,
			// The jti makes every minted token unique, including back-to-back
			// logins by the same user.
			ID: uuid.NewString(),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *HMACService) Validate(tokenString string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrTokenInvalid
	}

	p := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if c.UserID == "" {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}
