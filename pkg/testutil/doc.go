// Package testutil provides helpers for tests that need a settings
// directory and a home directory on a real temporary filesystem.
package testutil
