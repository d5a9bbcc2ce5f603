package wallet

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/tyler-smith/go-bip39"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
)

const (
	DefaultCoinType = 118
	Algorithm       = "secp256k1"
)

type Options struct {
	Prefix   string
	Accounts int
	CoinType uint32
}

type Account struct {
	Address string
	PubKey  []byte
	Algo    string
}

// Wallet is an offline secp256k1 signer holding one key per derived account.
type Wallet struct {
	prefix   string
	keys     [][]byte
	accounts []Account
}

// NewMnemonic generates a fresh 24-word BIP-39 mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	return bip39.NewMnemonic(entropy)
}

// FromMnemonic derives options.Accounts keys along m/44'/coin'/0'/0/i.
func FromMnemonic(mnemonic string, options Options) (*Wallet, error) {
	normalized := strings.Join(strings.Fields(mnemonic), " ")
	if normalized == "" {
		return nil, fmt.Errorf("mnemonic is required")
	}
	seed, err := bip39.NewSeedWithErrorChecking(normalized, "")
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}

	accounts := options.Accounts
	if accounts <= 0 {
		accounts = 1
	}
	coinType := options.CoinType
	if coinType == 0 {
		coinType = DefaultCoinType
	}

	master, chainCode := hd.ComputeMastersFromSeed(seed)
	keys := make([][]byte, 0, accounts)
	for index := 0; index < accounts; index++ {
		path := hd.CreateHDPath(coinType, 0, uint32(index)).String()
		key, err := hd.DerivePrivateKeyForPath(master, chainCode, path)
		if err != nil {
			return nil, fmt.Errorf("failed to derive key for %s: %w", path, err)
		}
		keys = append(keys, key)
	}

	return newWallet(keys, options.Prefix)
}

// FromPrivateKeyHex builds a single-account wallet from a raw 32-byte key.
func FromPrivateKeyHex(privateKeyHex string, prefix string) (*Wallet, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")
	if trimmed == "" {
		return nil, fmt.Errorf("private key is required")
	}
	key, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid private key hex: %w", err)
	}
	if len(key) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", btcec.PrivKeyBytesLen, len(key))
	}
	return newWallet([][]byte{key}, prefix)
}

func newWallet(keys [][]byte, prefix string) (*Wallet, error) {
	normalizedPrefix := strings.TrimSpace(prefix)
	if normalizedPrefix == "" {
		normalizedPrefix = shared.DefaultBech32Prefix
	}

	accounts := make([]Account, 0, len(keys))
	for _, key := range keys {
		privateKey, _ := btcec.PrivKeyFromBytes(key)
		pubKey := privateKey.PubKey().SerializeCompressed()
		address, err := AddressFromPubKey(pubKey, normalizedPrefix)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, Account{Address: address, PubKey: pubKey, Algo: Algorithm})
	}

	return &Wallet{prefix: normalizedPrefix, keys: keys, accounts: accounts}, nil
}

// AddressFromPubKey encodes the Cosmos address of a compressed public key.
func AddressFromPubKey(pubKey []byte, prefix string) (string, error) {
	if len(pubKey) != btcec.PubKeyBytesLenCompressed {
		return "", fmt.Errorf("public key must be %d bytes compressed", btcec.PubKeyBytesLenCompressed)
	}
	address := (&secp256k1.PubKey{Key: pubKey}).Address()
	encoded, err := bech32.ConvertAndEncode(prefix, address.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to encode address: %w", err)
	}
	return encoded, nil
}

func (w *Wallet) Prefix() string {
	return w.prefix
}

func (w *Wallet) Accounts() []Account {
	accounts := make([]Account, len(w.accounts))
	copy(accounts, w.accounts)
	return accounts
}

// Account returns the account at index.
func (w *Wallet) Account(index int) (Account, error) {
	if index < 0 || index >= len(w.accounts) {
		return Account{}, fmt.Errorf("account index %d out of range (wallet has %d accounts)", index, len(w.accounts))
	}
	return w.accounts[index], nil
}

// Sign returns the 64-byte r||s signature of sha256(signBytes), as expected
// by SIGN_MODE_DIRECT.
func (w *Wallet) Sign(index int, signBytes []byte) ([]byte, error) {
	if index < 0 || index >= len(w.keys) {
		return nil, fmt.Errorf("account index %d out of range (wallet has %d accounts)", index, len(w.keys))
	}
	privateKey := secp256k1.PrivKey{Key: w.keys[index]}
	signature, err := privateKey.Sign(signBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	return signature, nil
}

// VerifySignature checks a 64-byte r||s signature over sha256(message).
func VerifySignature(pubKey []byte, message []byte, signature []byte) bool {
	if len(signature) != 64 {
		return false
	}
	publicKey, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return false
	}

	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(signature[:32]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(signature[32:]); overflow {
		return false
	}
	if s.IsOverHalfOrder() {
		return false
	}

	digest := sha256.Sum256(message)
	return ecdsa.NewSignature(&r, &s).Verify(digest[:], publicKey)
}
