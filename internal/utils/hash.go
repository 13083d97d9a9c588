package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignString returns the unpadded base64url HMAC-SHA256 signature of data,
// safe to embed in a cookie value.
func SignString(data string, hashKey string) string {
	return base64.RawURLEncoding.EncodeToString(hashString([]byte(data), hashKey))
}

// VerifySignature reports whether signature is the [SignString] of data
// under hashKey. The comparison is constant-time.
func VerifySignature(data, signature, hashKey string) bool {
	got, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key. A new HMAC instance is created on each call.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
