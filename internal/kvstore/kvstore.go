// Package kvstore persists JSON state slices under string keys. It is the
// local, synchronous equivalent of the browser's key-value storage: one
// value per key, no transactions spanning keys, no network.
package kvstore

// Store is the persistence boundary of the application state store.
type Store interface {
	// Get returns the value stored under key. The second result is false
	// when the key is absent; absence is not an error.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
	GetStorageType() string
}
