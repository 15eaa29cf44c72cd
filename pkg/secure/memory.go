// Package secure holds secret byte material and wipes it when done.
package secure

import (
	"crypto/subtle"
	"runtime"
	"sync"
)

// SecureBytes owns a private copy of a secret. Callers only ever see copies.
type SecureBytes struct {
	data []byte
	mu   sync.RWMutex
}

// FromBytes copies data into a new SecureBytes.
func FromBytes(data []byte) *SecureBytes {
	sb := &SecureBytes{
		data: make([]byte, len(data)),
	}
	copy(sb.data, data)
	return sb
}

func (sb *SecureBytes) Get() []byte {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	result := make([]byte, len(sb.data))
	copy(result, sb.data)
	return result
}

func (sb *SecureBytes) Len() int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return len(sb.data)
}

// Clear zeroes the secret in place, keeping its length.
func (sb *SecureBytes) Clear() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	Zero(sb.data)
	runtime.GC()
}

// Destroy zeroes the secret and releases it.
func (sb *SecureBytes) Destroy() {
	sb.Clear()

	sb.mu.Lock()
	sb.data = nil
	sb.mu.Unlock()
}

func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// ClearBytes zeroes *b and sets it to nil.
func ClearBytes(b *[]byte) {
	if b == nil || *b == nil {
		return
	}
	Zero(*b)
	*b = nil
}

func ConstantTimeCompare(x, y []byte) bool {
	if len(x) != len(y) {
		return false
	}
	return subtle.ConstantTimeCompare(x, y) == 1
}
