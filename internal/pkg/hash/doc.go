// Package hash provides one-way hashing behind a small interface.
//
// The password hasher is a swappable component: the default driver is plain
// SHA-256 with a constant-time comparison, and bcrypt can be selected from
// configuration for real credential storage. Hashes never leave the store, so
// the encoded format is an implementation detail of the chosen driver.
package hash
