package credentials

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrUnseal = errors.New("the stored token could not be decrypted with the configured key")

// sealer encrypts tokens at rest. The zero value passes tokens through unchanged.
type sealer struct {
	key *[32]byte
}

func newSealer(key []byte) (sealer, error) {
	if len(key) == 0 {
		return sealer{}, nil
	}

	if len(key) != 32 {
		return sealer{}, fmt.Errorf("credential key must be 32 bytes, got %d", len(key))
	}

	var k [32]byte
	copy(k[:], key)
	return sealer{key: &k}, nil
}

func (s sealer) seal(plaintext string) (string, error) {
	if s.key == nil || plaintext == "" {
		return plaintext, nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, s.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s sealer) open(stored string) (string, error) {
	if s.key == nil || stored == "" {
		return stored, nil
	}

	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil || len(raw) < nonceSize {
		return "", ErrUnseal
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, s.key)
	if !ok {
		return "", ErrUnseal
	}

	return string(plain), nil
}
