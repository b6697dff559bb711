// Package password хеширует и проверяет пароли учетных записей.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Hasher interface {
	Hash(raw string) (string, error)
	Verify(hash, raw string) bool
}

// SHA256Hasher hex(sha256(пароль)) без соли, формат исходной БД
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(raw string) (string, error) {
	return SHA256Hex(raw), nil
}

func (SHA256Hasher) Verify(hash, raw string) bool {
	return verify(hash, raw)
}

func SHA256Hex(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(raw string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(hash, raw string) bool {
	return verify(hash, raw)
}

// verify определяет формат хеша по префиксу, так что в одной БД могут жить оба формата
func verify(hash, raw string) bool {
	if IsBcrypt(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(hash)), []byte(SHA256Hex(raw))) == 1
}

func IsBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2")
}

// New возвращает хешер по имени из конфига
func New(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", "sha256":
		return SHA256Hasher{}, nil
	case "bcrypt":
		return BcryptHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}
