package file

import (
	"crypto/sha256"
	"encoding/hex"
)

// Arşiv içeriği için hash hesaplama
func CalculateHash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
