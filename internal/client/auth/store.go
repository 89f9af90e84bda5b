package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/crypto"
)

// ErrNoSession сохраненной сессии нет
var ErrNoSession = errors.New("no stored session")

// Session расшифрованные токены владельца.
type Session struct {
	ExpiresAt    time.Time
	Owner        string
	Username     string
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// TokenStore шифрует токены перед сохранением в хранилище и расшифровывает при чтении.
// Ключ выводится из client secret, владельца и соли, хранимой рядом с токенами.
type TokenStore struct {
	storage storage.AuthStorage
	secret  string
}

// NewTokenStore creates a token store; secret is the OAuth2 client secret
func NewTokenStore(storage storage.AuthStorage, secret string) *TokenStore {
	return &TokenStore{storage: storage, secret: secret}
}

// Save шифрует и сохраняет токены; каждая запись получает новую соль.
func (s *TokenStore) Save(ctx context.Context, owner, username string, tok *oauth2.Token) error {
	if tok == nil || tok.AccessToken == "" {
		return fmt.Errorf("token is empty")
	}

	salt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return err
	}
	key, err := crypto.DeriveTokenKeyFromBase64Salt(s.secret, owner, salt)
	if err != nil {
		return fmt.Errorf("failed to derive token key: %w", err)
	}

	aad := []byte(owner)
	access, err := crypto.SealToBase64([]byte(tok.AccessToken), key, aad)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	var refresh string
	if tok.RefreshToken != "" {
		refresh, err = crypto.SealToBase64([]byte(tok.RefreshToken), key, aad)
		if err != nil {
			return fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
	}

	data := &storage.AuthData{
		Owner:        owner,
		Username:     username,
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    tok.Type(),
		Salt:         salt,
	}
	if !tok.Expiry.IsZero() {
		data.ExpiresAt = tok.Expiry.Unix()
	}
	return s.storage.SaveAuth(ctx, data)
}

// Load читает и расшифровывает сохраненную сессию.
func (s *TokenStore) Load(ctx context.Context) (*Session, error) {
	data, err := s.storage.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	key, err := crypto.DeriveTokenKeyFromBase64Salt(s.secret, data.Owner, data.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive token key: %w", err)
	}

	aad := []byte(data.Owner)
	access, err := crypto.OpenFromBase64(data.AccessToken, key, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}
	session := &Session{
		Owner:       data.Owner,
		Username:    data.Username,
		AccessToken: string(access),
		TokenType:   data.TokenType,
	}
	if data.RefreshToken != "" {
		refresh, err := crypto.OpenFromBase64(data.RefreshToken, key, aad)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
		}
		session.RefreshToken = string(refresh)
	}
	if data.ExpiresAt > 0 {
		session.ExpiresAt = time.Unix(data.ExpiresAt, 0)
	}
	return session, nil
}

// Delete удаляет сессию; отсутствие сессии не ошибка.
func (s *TokenStore) Delete(ctx context.Context) error {
	if err := s.storage.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
