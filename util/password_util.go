// util/password_util.go

package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// passwordChars deliberately excludes lookalike characters (0/O, 1/l/I)
// since generated passwords are read out to new employees.
const passwordChars = "ABCDEFGHJKLMNPQRSTUVWXYZ" +
	"abcdefghijkmnopqrstuvwxyz" +
	"23456789" +
	"!@#$%"

// GeneratePassword returns a random initial password of the given length.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("password length must be > 0, got %d", length)
	}
	max := big.NewInt(int64(len(passwordChars)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		out[i] = passwordChars[n.Int64()]
	}
	return string(out), nil
}
