package utils

import (
	"encoding/json"
	rndm "math/rand"
	"strings"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateID is kept as the short alias used by handlers.
func GenerateID(n int) string {
	return GenerateRandomString(n)
}

// --- JSON Helpers ---

func ToJSON(data any) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		return []byte("[]")
	}
	return b
}

// --- String Helpers ---

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}
