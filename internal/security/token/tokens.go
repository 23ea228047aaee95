package tokens

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateCode genera un código opaco aleatorio de nBytes, hex-encoded.
// Se usa para los códigos de confirmación de email (16 bytes) y de
// reset de password (30 bytes).
func GenerateCode(nBytes int) (string, error) {
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
