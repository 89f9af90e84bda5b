// Package auth keeps the OAuth2 session of the client: encrypted tokens on disk
// and reconnection of the transport on start.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2"

	"github.com/iudanet/docsync/internal/validation"
)

// DefaultRefreshSkew токен обновляется, если истекает раньше чем через это время
const DefaultRefreshSkew = 30 * time.Second

//go:generate moq -out connector_mock.go . Connector

// Connector получает и обновляет токены у сервера авторизации.
type Connector interface {
	Connect(ctx context.Context, username, password string) (*oauth2.Token, error)
	Reconnect(ctx context.Context, username, accessToken, refreshToken string, forceRefresh bool) (*oauth2.Token, error)
	Disconnect()
}

// Service login, восстановление и завершение сессии.
type Service struct {
	connector Connector
	store     *TokenStore
	logger    *slog.Logger
	now       func() time.Time
	skew      time.Duration
}

// NewService creates a session service
func NewService(connector Connector, store *TokenStore, logger *slog.Logger) *Service {
	return &Service{
		connector: connector,
		store:     store,
		logger:    logger,
		now:       time.Now,
		skew:      DefaultRefreshSkew,
	}
}

// Login получает токены и сохраняет их зашифрованными.
// Пустой username означает client credentials.
func (s *Service) Login(ctx context.Context, owner, username, password string) (*oauth2.Token, error) {
	if err := validation.ValidateOwner(owner); err != nil {
		return nil, fmt.Errorf("invalid owner: %w", err)
	}

	tok, err := s.connector.Connect(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	if err := s.store.Save(ctx, owner, username, tok); err != nil {
		s.connector.Disconnect()
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Logged in", "owner", owner, "username", username)
	return tok, nil
}

// Resume восстанавливает сессию из хранилища.
// Истекший access token сразу обменивается по refresh token, обновленные токены сохраняются.
func (s *Service) Resume(ctx context.Context) (*Session, *oauth2.Token, error) {
	session, err := s.store.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	force := session.Expired(s.now(), s.skew)
	tok, err := s.connector.Reconnect(ctx, session.Username, session.AccessToken, session.RefreshToken, force)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resume session: %w", err)
	}

	if tok.AccessToken != session.AccessToken {
		if tok.RefreshToken == "" {
			tok.RefreshToken = session.RefreshToken
		}
		if err := s.store.Save(ctx, session.Owner, session.Username, tok); err != nil {
			return nil, nil, fmt.Errorf("failed to save refreshed session: %w", err)
		}
		session.AccessToken = tok.AccessToken
		session.RefreshToken = tok.RefreshToken
		session.ExpiresAt = tok.Expiry
		s.logger.Info("Session refreshed", "owner", session.Owner)
	}

	return session, tok, nil
}

// IsAuthenticated reports whether a stored session exists
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.store.Load(ctx)
	if errors.Is(err, ErrNoSession) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Logout забывает токены в памяти и на диске.
func (s *Service) Logout(ctx context.Context) error {
	s.connector.Disconnect()
	if err := s.store.Delete(ctx); err != nil {
		return err
	}
	s.logger.Info("Logged out")
	return nil
}
