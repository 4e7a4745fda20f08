package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"

	"github.com/allisson/constguard/internal/obfuscation/domain"
)

const processSeedSize = 32

// KeyMaterial holds the key components of one constant group.
//
// Session and Storage are drawn at runtime; Pepper and Salt are fixed per
// group flavour. Only the XOR of all four is ever used and callers recompute
// it on each read instead of caching it.
type KeyMaterial struct {
	Session uint64
	Storage uint64
	Pepper  uint64
	Salt    uint64
}

// Mix returns the combined key.
func (k KeyMaterial) Mix() uint64 {
	return k.Session ^ k.Storage ^ k.Pepper ^ k.Salt
}

// processSeed is drawn once per process and never leaves this package.
var processSeed = sync.OnceValues(func() ([]byte, error) {
	seed := make([]byte, processSeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("failed to draw process seed: %w", err)
	}
	return seed, nil
})

// DeriveKey derives a 64-bit key from seed using HKDF-SHA256 with info as context.
func DeriveKey(seed []byte, info string) (uint64, error) {
	reader := hkdf.New(sha256.New, seed, nil, []byte(info))

	var buf [8]byte
	if _, err := io.ReadFull(reader, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to derive key: %w", err)
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}

// SessionKey derives the session key of a group from the process seed.
// Calls with the same group name return the same key for the life of the process.
func SessionKey(group string) (uint64, error) {
	seed, err := processSeed()
	if err != nil {
		return 0, err
	}
	return DeriveKey(seed, "constguard-session-v1/"+group)
}

// RandomKey draws a fresh 64-bit key from the system CSPRNG.
func RandomKey() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to draw random key: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// NewKeyMaterial draws the runtime key components of a group.
//
// The basic family carries no salt. Decimal-only groups pass
// domain.DecimalPepper, all others domain.Pepper.
func NewKeyMaterial(group string, family domain.Family, pepper uint64) (KeyMaterial, error) {
	session, err := SessionKey(group)
	if err != nil {
		return KeyMaterial{}, err
	}

	storage, err := RandomKey()
	if err != nil {
		return KeyMaterial{}, err
	}

	key := KeyMaterial{Session: session, Storage: storage, Pepper: pepper}
	if family != domain.FamilyBasic {
		key.Salt = domain.Salt
	}

	return key, nil
}
