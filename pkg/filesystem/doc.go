// Package filesystem creates the files named by expanded templates.
//
// The creator works on an afero.Fs so the OS filesystem is used in
// production and an in-memory one in tests.
package filesystem
