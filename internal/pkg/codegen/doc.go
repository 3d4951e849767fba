// Package codegen generates random decimal one-time codes.
//
// Codes are plain uniform digit strings with no counter or time component;
// lifetime and single-use semantics are enforced by the caller.
package codegen
