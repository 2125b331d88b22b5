// Package hashutil computes content checksums in the "sha256:<hex>" form.
package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

const prefix = "sha256:"

// Checksum returns the checksum of data
func Checksum(data []byte) string {
	return fmt.Sprintf("%s%x", prefix, sha256.Sum256(data))
}

// CalculateFileChecksum returns the checksum of the file at path
func CalculateFileChecksum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%x", prefix, hash.Sum(nil)), nil
}

// SameContent reports whether the file at path holds exactly data.
// A missing or unreadable file is never the same.
func SameContent(path string, data []byte) bool {
	sum, err := CalculateFileChecksum(path)
	if err != nil {
		return false
	}
	return sum == Checksum(data)
}
