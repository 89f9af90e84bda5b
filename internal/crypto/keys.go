package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id для ключа хранилища токенов
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// Argon2KeyLen - длина выходного ключа в байтах
	Argon2KeyLen = 32
	// SaltSize - размер соли в байтах
	SaltSize = 32
)

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// GenerateSaltBase64 генерирует соль и возвращает ее в Base64
func GenerateSaltBase64() (string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveTokenKey выводит ключ шифрования токенов из client secret и владельца.
// Одинаковые входные данные всегда дают одинаковый ключ, поэтому после перезапуска
// токены расшифровываются без хранения ключа на диске.
func DeriveTokenKey(secret, owner string, salt []byte) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("secret cannot be empty")
	}
	if owner == "" {
		return nil, fmt.Errorf("owner cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	input := []byte(secret + "\x00" + owner + "\x00token")
	return argon2.IDKey(input, salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen), nil
}

// DeriveTokenKeyFromBase64Salt выводит ключ из Base64-кодированной соли
func DeriveTokenKeyFromBase64Salt(secret, owner, saltBase64 string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(saltBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	return DeriveTokenKey(secret, owner, salt)
}

// PasswordHash хеш пароля или client secret вместе с солью, обе части в Base64.
type PasswordHash struct {
	Hash string
	Salt string
}

// HashPassword хеширует пароль Argon2id со свежей солью.
// Каждый вызов дает новую соль, поэтому хеши одного пароля различаются.
func HashPassword(password string) (PasswordHash, error) {
	if password == "" {
		return PasswordHash{}, fmt.Errorf("password cannot be empty")
	}
	salt, err := GenerateSalt()
	if err != nil {
		return PasswordHash{}, err
	}
	key := argon2.IDKey([]byte(password), salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)
	return PasswordHash{
		Hash: base64.StdEncoding.EncodeToString(key),
		Salt: base64.StdEncoding.EncodeToString(salt),
	}, nil
}

// VerifyPassword сравнивает пароль с сохраненным хешем за постоянное время
func VerifyPassword(password string, stored PasswordHash) (bool, error) {
	salt, err := base64.StdEncoding.DecodeString(stored.Salt)
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}
	want, err := base64.StdEncoding.DecodeString(stored.Hash)
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}
	got := argon2.IDKey([]byte(password), salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
