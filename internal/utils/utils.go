package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"sync/atomic"
	"time"
)

// Counter for sequential uniqueness
var sequenceCounter uint64 = 0

// GenerateShortID creates a short, URL-safe, cryptographically random ID
func GenerateShortID() string {
	buf := make([]byte, 0, 64)

	// Add timestamp
	timeBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(timeBytes, uint64(time.Now().UnixNano()))
	buf = append(buf, timeBytes...)

	// Add counter
	counterBytes := make([]byte, 8)
	counter := atomic.AddUint64(&sequenceCounter, 1)
	binary.BigEndian.PutUint64(counterBytes, counter)
	buf = append(buf, counterBytes...)

	// Add some randomness
	randomBytes := make([]byte, 8)
	rand.Read(randomBytes)
	buf = append(buf, randomBytes...)

	// Hash with SHA-256, keep the first 16 bytes
	hash := sha256.Sum256(buf)
	encoded := base64.URLEncoding.EncodeToString(hash[:16])

	// Remove padding and return
	return encoded[:22]
}

// GeneratePrefixedID generates an ID with a readable prefix
func GeneratePrefixedID(prefix string) string {
	return prefix + "-" + GenerateShortID()
}

// GenerateUserID creates a user ID
func GenerateUserID() string {
	return GeneratePrefixedID("user")
}

// GenerateBlogID creates a blog post ID
func GenerateBlogID() string {
	return GeneratePrefixedID("blog")
}
