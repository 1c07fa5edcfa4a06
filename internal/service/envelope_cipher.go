package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving envelope keys from short secrets.
const (
	kdfTime    = 1
	kdfMemory  = 64 * 1024 // 64MB
	kdfThreads = 4
	kdfKeyLen  = 32
)

// KeyRing holds versioned AES-256 key material. Secrets that are already
// 64-character hex strings are decoded directly; shorter secrets are
// stretched through Argon2id with a salt fixed per version, so the
// derivation is deterministic and rotated keys still decrypt old blobs.
type KeyRing struct {
	secrets map[byte]string
	active  byte

	mu      sync.Mutex
	derived map[byte][]byte // memoized key material
}

// NewKeyRing creates a key ring from version->secret pairs. The active
// version encrypts new data; every listed version can decrypt.
func NewKeyRing(secrets map[byte]string, active byte) (*KeyRing, error) {
	if len(secrets) == 0 {
		return nil, fmt.Errorf("key ring requires at least one secret")
	}
	if _, ok := secrets[active]; !ok {
		return nil, fmt.Errorf("active key version %d has no secret", active)
	}
	return &KeyRing{
		secrets: secrets,
		active:  active,
		derived: make(map[byte][]byte),
	}, nil
}

// ActiveVersion returns the version used for new encryptions.
func (r *KeyRing) ActiveVersion() byte {
	return r.active
}

// Key returns the 32-byte key for a version, deriving and caching it on
// first use. Derivation is slow on purpose; the guard keeps concurrent
// first use from repeating it.
func (r *KeyRing) Key(version byte) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key, ok := r.derived[version]; ok {
		return key, nil
	}

	secret, ok := r.secrets[version]
	if !ok {
		return nil, fmt.Errorf("unknown key version %d", version)
	}

	key, err := deriveKey(secret, version)
	if err != nil {
		return nil, err
	}
	r.derived[version] = key
	return key, nil
}

func deriveKey(secret string, version byte) ([]byte, error) {
	if len(secret) == 2*kdfKeyLen {
		if key, err := hex.DecodeString(secret); err == nil {
			return key, nil
		}
	}
	// Salt is fixed per version so the same secret always derives the
	// same key material.
	salt := sha256.Sum256([]byte(fmt.Sprintf("envelope-key-v%d", version)))
	return argon2.IDKey([]byte(secret), salt[:], kdfTime, kdfMemory, kdfThreads, kdfKeyLen), nil
}

// EnvelopeCipherService implements ports.EnvelopeCipher using AES-256-GCM
// with a version-tagged blob: hex([version byte][nonce][ciphertext+tag]).
type EnvelopeCipherService struct {
	ring *KeyRing
}

// NewEnvelopeCipherService creates a cipher bound to a key ring.
func NewEnvelopeCipherService(ring *KeyRing) *EnvelopeCipherService {
	return &EnvelopeCipherService{ring: ring}
}

// Encrypt seals plaintext under the active key version.
func (s *EnvelopeCipherService) Encrypt(plaintext []byte) (string, error) {
	version := s.ring.ActiveVersion()
	aesGCM, err := s.gcm(version)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	blob := make([]byte, 0, 1+len(nonce)+len(plaintext)+aesGCM.Overhead())
	blob = append(blob, version)
	blob = append(blob, nonce...)
	blob = aesGCM.Seal(blob, nonce, plaintext, nil)
	return hex.EncodeToString(blob), nil
}

// Decrypt opens a blob using the key version recorded in its first byte.
// Fails closed on tag mismatch; never returns partial plaintext.
func (s *EnvelopeCipherService) Decrypt(blobHex string) ([]byte, error) {
	blob, err := hex.DecodeString(blobHex)
	if err != nil {
		return nil, fmt.Errorf("decoding ciphertext: %w", err)
	}
	if len(blob) < 2 {
		return nil, fmt.Errorf("ciphertext too short")
	}

	version := blob[0]
	aesGCM, err := s.gcm(version)
	if err != nil {
		return nil, err
	}

	nonceSize := aesGCM.NonceSize()
	if len(blob) < 1+nonceSize+aesGCM.Overhead() {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[1:1+nonceSize], blob[1+nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}
	return plaintext, nil
}

// EncryptJSON marshals v and encrypts the result.
func (s *EnvelopeCipherService) EncryptJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshaling payload: %w", err)
	}
	return s.Encrypt(data)
}

// DecryptJSON decrypts a blob and unmarshals it into v.
func (s *EnvelopeCipherService) DecryptJSON(blobHex string, v any) error {
	data, err := s.Decrypt(blobHex)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshaling payload: %w", err)
	}
	return nil
}

func (s *EnvelopeCipherService) gcm(version byte) (cipher.AEAD, error) {
	key, err := s.ring.Key(version)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return aesGCM, nil
}
