// Package codec wraps the Base64 and SHA-256 primitives used across
// the toolkit.
package codec

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// EncodeBase64 encodes a string with the URL-safe alphabet.
func EncodeBase64(source string) string {
	return EncodeBase64Bytes([]byte(source))
}

// EncodeBase64Bytes encodes bytes with the URL-safe alphabet.
func EncodeBase64Bytes(b []byte) string {
	return base64.URLEncoding.EncodeToString(b)
}

// DecodeBase64 decodes a URL-safe Base64 string.
func DecodeBase64(source string) (string, error) {
	b, err := DecodeBase64Bytes(source)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeBase64Bytes decodes a URL-safe Base64 string to bytes.
func DecodeBase64Bytes(source string) ([]byte, error) {
	b, err := base64.URLEncoding.DecodeString(source)
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}
	return b, nil
}

// EncodeBase64Std encodes with the standard alphabet,
// for callers talking to non URL-safe peers.
func EncodeBase64Std(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64Std decodes a standard-alphabet Base64 string.
func DecodeBase64Std(source string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(source)
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}
	return b, nil
}

// SHA256 returns the lowercase hex digest of a string.
func SHA256(source string) string {
	return SHA256Bytes([]byte(source))
}

// SHA256Bytes returns the lowercase hex digest of bytes.
func SHA256Bytes(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}

// SHA256File streams a file through SHA-256 and returns the hex digest.
func SHA256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("sha256 %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
