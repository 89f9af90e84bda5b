package storage

import (
	"context"
)

//go:generate moq -out authstorage_mock.go . AuthStorage

// AuthStorage keeps the single session record of the client.
// Токены приходят уже зашифрованными в auth.TokenStore; хранилище их не расшифровывает.
type AuthStorage interface {
	// SaveAuth replaces the session record
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth returns the session record
	// Returns ErrAuthNotFound if there is no session
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the session record
	// Returns ErrAuthNotFound if there is no session
	DeleteAuth(ctx context.Context) error
}

// AuthData сессия владельца в хранилище. AccessToken и RefreshToken
// зашифрованы ключом, выведенным из секрета клиента и Salt; Owner служит
// дополнительными данными шифра, поэтому запись нельзя перенести другому владельцу.
type AuthData struct {
	Owner        string `json:"owner"`
	Username     string `json:"username,omitempty"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	Salt         string `json:"salt"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds, 0 если сервер не сообщил срок
}
