package object

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// HashSize is the raw length of every digest, whatever the format.
const HashSize = 20

// Hash is a 40-character lowercase hex-encoded 160-bit digest.
type Hash string

// Bytes returns the raw digest bytes.
func (h Hash) Bytes() ([]byte, error) {
	if len(h) != 2*HashSize {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHash, string(h))
	}
	raw, err := hex.DecodeString(string(h))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHash, string(h))
	}
	return raw, nil
}

// HashFromBytes converts raw digest bytes to a Hash.
func HashFromBytes(raw []byte) (Hash, error) {
	if len(raw) != HashSize {
		return "", fmt.Errorf("%w: %d raw bytes", ErrInvalidHash, len(raw))
	}
	return Hash(hex.EncodeToString(raw)), nil
}

// ParseHash validates user-supplied hex text. Upper-case input is
// accepted and normalized.
func ParseHash(s string) (Hash, error) {
	h := Hash(strings.ToLower(strings.TrimSpace(s)))
	if _, err := h.Bytes(); err != nil {
		return "", err
	}
	return h, nil
}

// Format selects the digest algorithm. Both formats produce 160-bit
// digests, so the tree record layout is identical.
type Format string

const (
	// FormatSHA1 matches the reference on-disk format.
	FormatSHA1 Format = "sha1"
	// FormatBLAKE2b160 is blake2b truncated to a 20-byte output.
	FormatBLAKE2b160 Format = "blake2b-160"
)

// ParseFormat checks a configured format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatSHA1, FormatBLAKE2b160:
		return f, nil
	case "":
		return FormatSHA1, nil
	default:
		return "", fmt.Errorf("unknown object format %q", name)
	}
}

func (f Format) newHash() hash.Hash {
	switch f {
	case FormatBLAKE2b160:
		h, err := blake2b.New(HashSize, nil)
		if err != nil {
			// Only fails for sizes outside 1..64 or oversized keys.
			panic(err)
		}
		return h
	default:
		return sha1.New()
	}
}

// HashBytes digests data as-is, with no object header.
func (f Format) HashBytes(data []byte) Hash {
	h := f.newHash()
	h.Write(data)
	return Hash(hex.EncodeToString(h.Sum(nil)))
}

// HashObject digests the full encoded form "kind size\0content". The
// digest is never taken over the content alone.
func (f Format) HashObject(o *Object) Hash {
	return f.HashBytes(Encode(o))
}

// HashBytes digests data with SHA-1.
func HashBytes(data []byte) Hash {
	return FormatSHA1.HashBytes(data)
}

// HashObject digests an object's encoded form with SHA-1.
func HashObject(o *Object) Hash {
	return FormatSHA1.HashObject(o)
}
