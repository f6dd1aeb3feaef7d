// Package address implements the XRPL classic address encoding (base58check
// with the ripple alphabet over a 20-byte account ID).
package address

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// Prefix is the version byte of classic account addresses.
const Prefix = 0x00

// AccountIDSize is the size of a decoded account ID in bytes.
const AccountIDSize = 20

// rippleAlphabet is the base58 alphabet used by the XRP Ledger.
var rippleAlphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

// ErrChecksum is returned when the address checksum doesn't match its payload.
var ErrChecksum = errors.New("address checksum mismatch")

// checksum returns the first four bytes of the double SHA-256 of b.
func checksum(b []byte) []byte {
	h := sha256.Sum256(b)
	h = sha256.Sum256(h[:])
	return h[:4]
}

// Encode returns the classic address for the given 20-byte account ID.
func Encode(accountID [AccountIDSize]byte) string {
	b := append([]byte{Prefix}, accountID[:]...)
	return base58.EncodeAlphabet(append(b, checksum(b)...), rippleAlphabet)
}

// Decode attempts to decode the given classic address into an account ID.
func Decode(s string) (accountID [AccountIDSize]byte, err error) {
	b, err := base58.DecodeAlphabet(s, rippleAlphabet)
	if err != nil {
		return accountID, err
	}
	if len(b) != 1+AccountIDSize+4 {
		return accountID, fmt.Errorf("invalid address length %d", len(b))
	}
	if b[0] != Prefix {
		return accountID, fmt.Errorf("invalid address prefix %#x", b[0])
	}
	if !bytes.Equal(checksum(b[:1+AccountIDSize]), b[1+AccountIDSize:]) {
		return accountID, ErrChecksum
	}
	copy(accountID[:], b[1:1+AccountIDSize])
	return accountID, nil
}

// IsValid checks that s is a well-formed classic address.
func IsValid(s string) bool {
	_, err := Decode(s)
	return err == nil
}
