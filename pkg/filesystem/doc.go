// Package filesystem provides filesystem implementations for ayarla.
//
// This package contains implementations of the types.FS interface backed by
// the operating system.
package filesystem
