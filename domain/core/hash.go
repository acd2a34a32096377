package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Domain-specific hash types
type (
	FunctionHash   Hash
	RunFingerprint Hash
)

// Constructors
func NewFunctionHash(data []byte) FunctionHash     { return FunctionHash(NewHash(data)) }
func NewRunFingerprint(data []byte) RunFingerprint { return RunFingerprint(NewHash(data)) }

// String conversions
func (h FunctionHash) String() string   { return Hash(h).String() }
func (h RunFingerprint) String() string { return Hash(h).String() }

// ComputeFunctionHash hashes a transition table given its rows in canonical order.
// Rows must already be ordered; the hash is order-sensitive.
func ComputeFunctionHash(rows []string) FunctionHash {
	var data strings.Builder
	for _, row := range rows {
		data.WriteString(row)
		data.WriteString("\n")
	}
	return NewFunctionHash([]byte(data.String()))
}

// ComputeRunFingerprint hashes the parameter fields that identify a survey run.
func ComputeRunFingerprint(fields []string) RunFingerprint {
	var data strings.Builder
	for _, f := range fields {
		data.WriteString(f)
		data.WriteString("|")
	}
	return NewRunFingerprint([]byte(data.String()))
}
