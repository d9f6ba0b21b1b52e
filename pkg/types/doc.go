// Package types defines the core types and interfaces used throughout ayarla.
// This includes the manifest data model, the installation status and the
// filesystem interface the validator and installer operate on.
package types
