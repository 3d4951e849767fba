// Package session holds the in-memory bearer-token registry.
//
// Tokens are unguessable opaque strings (UUID v4) with a fixed time-to-live.
// Clients that lose a race with the TTL, or that outlive a process restart,
// simply authenticate again.
package session
