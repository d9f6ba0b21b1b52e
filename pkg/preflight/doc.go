// Package preflight verifies a settings directory before anything is
// installed from it.
//
// Checks run in order and stop at the first failure:
//
//  1. the path exists
//  2. the path is a directory
//  3. the directory is not empty
//  4. the directory contains manifest.toml
//  5. the directory contains something besides manifest.toml
//  6. manifest.toml is not empty
//  7. manifest.toml parses into a list of manifest items
//
// Nothing is written to disk, so a failed check never leaves partial state.
package preflight
