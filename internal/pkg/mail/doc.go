// Package mail sends email through a provider-agnostic interface.
package mail
