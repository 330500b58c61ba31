// Package session persists the authenticated customer's bearer token
// and profile. Token issuance and verification belong to the backend;
// this store only keeps what the client needs to forward requests.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Verah-Mokaya/foodcourt-sub000/models"
	"github.com/Verah-Mokaya/foodcourt-sub000/storage"
)

// Fixed storage keys shared with the web client.
const (
	tokenKey = "fc_token"
	userKey  = "fc_user"
)

var ErrNoSession = errors.New("no active session")

type Store struct {
	kv storage.Store
}

func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// Save records the token and user returned by a successful login.
func (s *Store) Save(token string, user models.User) error {
	if err := s.kv.Set(tokenKey, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.kv.Set(userKey, string(raw)); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, if any.
func (s *Store) Token() (string, bool) {
	v, ok, err := s.kv.Get(tokenKey)
	if err != nil || !ok || v == "" {
		return "", false
	}
	return v, true
}

// User returns the stored profile or ErrNoSession.
func (s *Store) User() (models.User, error) {
	raw, ok, err := s.kv.Get(userKey)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrNoSession
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return models.User{}, fmt.Errorf("decode user: %w", err)
	}
	return u, nil
}

// CustomerID is a convenience for the checkout path.
func (s *Store) CustomerID() (uint, error) {
	u, err := s.User()
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Clear wipes the session (logout).
func (s *Store) Clear() error {
	if err := s.kv.Remove(tokenKey); err != nil {
		return err
	}
	return s.kv.Remove(userKey)
}

// ExpiresAt reads the exp claim from the stored token without
// verifying the signature — the client has no signing key and the
// backend re-validates every request anyway. Returns the zero time
// when there is no token or no exp claim.
func (s *Store) ExpiresAt() time.Time {
	token, ok := s.Token()
	if !ok {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Expired reports whether the stored token carries an exp claim in
// the past. A token without exp is treated as live.
func (s *Store) Expired() bool {
	exp := s.ExpiresAt()
	return !exp.IsZero() && exp.Before(time.Now())
}
