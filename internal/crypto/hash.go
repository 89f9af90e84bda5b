package crypto

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

// HashSize длина hex-представления хеша цепочки
const HashSize = blake2b.Size256 * 2

// ChainHash вычисляет хеш коммита: blake2b-256(parentHash || payload).
// parentHash пустой для первого коммита в журнале.
// Возвращает hex-encoded строку.
func ChainHash(parentHash string, payload []byte) string {
	buf := make([]byte, 0, len(parentHash)+len(payload))
	buf = append(buf, parentHash...)
	buf = append(buf, payload...)

	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// NewFileHasher returns the streaming hash used for whole-file checksums.
func NewFileHasher() (hash.Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create hash: %w", err)
	}
	return h, nil
}

// FileHash хеширует содержимое файла потоково.
func FileHash(r io.Reader) (string, error) {
	h, err := NewFileHasher()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ChunkChecksum контрольная сумма куска файла: xxhash64 в hex.
func ChunkChecksum(chunk []byte) string {
	return strconv.FormatUint(xxhash.Sum64(chunk), 16)
}
