// Package storage provides the small key-value persistence layer the
// cart and session stores sit on. The interface is deliberately tiny
// so tests can swap in the in-memory store and production can use any
// durable backend.
package storage

// Store is a string key-value store. Get reports whether the key was
// present so callers can distinguish "absent" from "empty".
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}
