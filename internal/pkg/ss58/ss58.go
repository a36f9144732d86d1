// Package ss58 converts raw substrate account ids to and from their SS58
// display form.
package ss58

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/decred/base58"
	"golang.org/x/crypto/blake2b"
)

// SubstratePrefix is the generic substrate network prefix used by bittensor.
const SubstratePrefix uint16 = 42

const (
	accountIDLength = 32
	checksumLength  = 2
	maxPrefix       = 16383
)

var (
	ErrInvalidPrefix   = errors.New("invalid ss58 prefix")
	ErrInvalidLength   = errors.New("invalid account id length")
	ErrInvalidAddress  = errors.New("invalid ss58 address")
	ErrInvalidChecksum = errors.New("invalid ss58 checksum")
)

var checksumPreimage = []byte("SS58PRE")

func checksum(data []byte) []byte {
	h := blake2b.Sum512(append(append([]byte{}, checksumPreimage...), data...))
	return h[:checksumLength]
}

func encodePrefix(prefix uint16) ([]byte, error) {
	switch {
	case prefix < 64:
		return []byte{byte(prefix)}, nil
	case prefix <= maxPrefix:
		first := byte((prefix&0b1111_1100)>>2) | 0b0100_0000
		second := byte(prefix>>8) | byte((prefix&0b11)<<6)
		return []byte{first, second}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrefix, prefix)
	}
}

// Encode returns the SS58 address of a 32 byte account id under prefix.
func Encode(accountID []byte, prefix uint16) (string, error) {
	if len(accountID) != accountIDLength {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, len(accountID))
	}

	payload, err := encodePrefix(prefix)
	if err != nil {
		return "", err
	}
	payload = append(payload, accountID...)
	payload = append(payload, checksum(payload)...)

	return base58.Encode(payload), nil
}

// EncodeHex is Encode for a hex encoded account id, with or without 0x.
func EncodeHex(accountID string, prefix uint16) (string, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(accountID, "0x"), "0X"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidLength, err)
	}
	return Encode(raw, prefix)
}

// Decode returns the account id and network prefix of an SS58 address.
func Decode(address string) ([]byte, uint16, error) {
	data := base58.Decode(address)
	if len(data) < 1 {
		return nil, 0, ErrInvalidAddress
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case data[0] < 64:
		prefix, prefixLen = uint16(data[0]), 1
	case data[0] < 128 && len(data) > 1:
		lower := uint16(data[0]&0b0011_1111)<<2 | uint16(data[1])>>6
		upper := uint16(data[1]&0b0011_1111) << 8
		prefix, prefixLen = lower|upper, 2
	default:
		return nil, 0, ErrInvalidAddress
	}

	if len(data) != prefixLen+accountIDLength+checksumLength {
		return nil, 0, ErrInvalidAddress
	}

	body := data[:len(data)-checksumLength]
	if !bytes.Equal(checksum(body), data[len(data)-checksumLength:]) {
		return nil, 0, ErrInvalidChecksum
	}

	return body[prefixLen:], prefix, nil
}

// IsValid reports whether address is a well formed SS58 address.
func IsValid(address string) bool {
	_, _, err := Decode(address)
	return err == nil
}
