package storage

import (
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

const (
	// NameLength is the number of random characters in a generated record name
	NameLength = 8
	// MaxNameAttempts bounds the retries when a generated name already exists
	MaxNameAttempts = 5
)

// GenerateFileName returns NameLength random characters from [a-zA-Z0-9]
func GenerateFileName() string {
	return lo.RandomString(NameLength, lo.AlphanumericCharset)
}

// Extension returns the text after the last '.' of name, keeping only ASCII
// letters and digits. It returns "" when name has no extension.
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r < 128 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, name[idx+1:])
}

// RecordName builds a new random record name carrying the extension of originalName
func RecordName(originalName string) string {
	name := GenerateFileName()
	if ext := Extension(originalName); ext != "" {
		name += "." + ext
	}
	return name
}

// ValidateName rejects anything that is not a plain file name inside the store
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return ErrInvalidName
	case strings.ContainsAny(name, `/\`), strings.Contains(name, ".."):
		return ErrInvalidName
	case filepath.Base(name) != name:
		return ErrInvalidName
	}
	return nil
}
