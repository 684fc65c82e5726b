package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/vikalpis/scroll-app/models"
	"github.com/vikalpis/scroll-app/store"
)

// Identity is what a verified session proves about the caller.
type Identity struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// SessionProvider issues and verifies session tokens. The catalog
// API depends only on this interface, not on a token library.
type SessionProvider interface {
	Issue(identity Identity) (string, error)
	Verify(token string) (Identity, error)
}

// UserStore is the slice of the repository the auth gate needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Auth is the gate in front of the identity store: it owns password
// hashing and the session handshake.
type Auth struct {
	users    UserStore
	sessions SessionProvider
}

func NewAuth(users UserStore, sessions SessionProvider) *Auth {
	return &Auth{users: users, sessions: sessions}
}

// Register creates an account with the password stored as a bcrypt
// hash. No session is issued; the client logs in afterwards.
func (a *Auth) Register(ctx context.Context, email, password string) error {
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "email and password are required", Fields: missing}
	}

	if _, err := a.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.User{Email: email, Password: string(hashed)}
	if err := a.users.Create(ctx, user); err != nil {
		// The unique index wins any race the pre-check lost.
		if errors.Is(err, store.ErrDuplicate) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// Login checks the credential pair and issues a session token
// carrying the user's identity.
func (a *Auth) Login(ctx context.Context, email, password string) (string, Identity, error) {
	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", Identity{}, ErrNoSuchAccount
		}
		return "", Identity{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", Identity{}, ErrPasswordMismatch
	}

	identity := Identity{UserID: user.ID, Email: user.Email}
	token, err := a.sessions.Issue(identity)
	if err != nil {
		return "", Identity{}, err
	}
	return token, identity, nil
}

// JWTProvider signs stateless HS256 session tokens.
type JWTProvider struct {
	secret []byte
	ttl    time.Duration
}

// DefaultSessionTTL keeps a login valid for a week.
const DefaultSessionTTL = 7 * 24 * time.Hour

func NewJWTProvider(secret string, ttl time.Duration) *JWTProvider {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &JWTProvider{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func (p *JWTProvider) Issue(identity Identity) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		UserID: identity.UserID,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "scroll-app",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *JWTProvider) Verify(raw string) (Identity, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrUnauthorized
	}
	return Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
