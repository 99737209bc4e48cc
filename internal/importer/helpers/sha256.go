// Package helpers contains functions shared by the import parsers.
package helpers

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Sha256String calculates the SHA256 hash of the given fields and returns its
// hex representation. Fields are separated by a unit separator, so that
// ("ab", "c") and ("a", "bc") hash differently.
func Sha256String(fields ...string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(strings.Join(fields, "\x1f"))))
}
