// Package registry provides a generic, type-safe name-to-item registry
// that remembers registration order. The command host builds its command
// table on it.
package registry
