// Package keys provides signing-key generation and derivation for the pass
// minter. Minter keys are derived deterministically per event so a retried
// mint reuses the key that was already funded by the faucet.
package keys

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/hkdf"
)

// MinterKeyPair represents a secp256k1 signing keypair for minting.
type MinterKeyPair struct {
	PublicKey  []byte // 33-byte compressed secp256k1 public key
	PrivateKey []byte // 32-byte secp256k1 private key
}

// GenerateMinterKeyPair generates a new random secp256k1 keypair.
func GenerateMinterKeyPair() (*MinterKeyPair, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secp256k1 keypair: %w", err)
	}

	privateKeyBytes := crypto.FromECDSA(privateKey)
	publicKeyBytes := crypto.CompressPubkey(&privateKey.PublicKey)

	return &MinterKeyPair{
		PublicKey:  publicKeyBytes,
		PrivateKey: privateKeyBytes,
	}, nil
}

// DeriveMinterKeyPair deterministically derives a signing keypair for an event
// from the server's master seed. Uses HKDF with SHA-256.
func DeriveMinterKeyPair(eventID string, masterSeed []byte) (*MinterKeyPair, error) {
	if len(masterSeed) < 32 {
		return nil, fmt.Errorf("master seed must be at least 32 bytes")
	}

	info := []byte("tikket-minter-key-" + eventID)
	hkdfReader := hkdf.New(sha256.New, masterSeed, nil, info)

	privateKeyBytes := make([]byte, 32)
	if _, err := io.ReadFull(hkdfReader, privateKeyBytes); err != nil {
		return nil, fmt.Errorf("failed to derive key seed: %w", err)
	}

	privateKey, err := crypto.ToECDSA(privateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to create private key: %w", err)
	}

	publicKeyBytes := crypto.CompressPubkey(&privateKey.PublicKey)

	return &MinterKeyPair{
		PublicKey:  publicKeyBytes,
		PrivateKey: privateKeyBytes,
	}, nil
}

// ECDSA returns the private key as an ecdsa.PrivateKey for transaction signing.
func (kp *MinterKeyPair) ECDSA() (*ecdsa.PrivateKey, error) {
	privateKey, err := crypto.ToECDSA(kp.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to convert private key: %w", err)
	}
	return privateKey, nil
}

// Address returns the EVM address controlled by this keypair.
func (kp *MinterKeyPair) Address() (string, error) {
	pub, err := crypto.DecompressPubkey(kp.PublicKey)
	if err != nil {
		return "", fmt.Errorf("failed to decompress public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}

// PublicKeyHex returns the public key as a hex string (for display/logging)
func (kp *MinterKeyPair) PublicKeyHex() string {
	return fmt.Sprintf("%x", kp.PublicKey)
}

// MasterSeedFromBase64 decodes a base64-encoded master seed
func MasterSeedFromBase64(encoded string) ([]byte, error) {
	seed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode master seed: %w", err)
	}
	if len(seed) < 32 {
		return nil, fmt.Errorf("master seed must be at least 32 bytes, got %d", len(seed))
	}
	return seed, nil
}
