package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Excludes look-alike characters; generated passwords are read out loud to
// account holders during onboarding.
const charset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const GeneratedLength = 12

// Generate returns a random password from the charset using crypto/rand.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = GeneratedLength
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}
