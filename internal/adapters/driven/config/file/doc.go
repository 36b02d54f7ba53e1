// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem under the Lexa home
// directory (~/.lexa, or $LEXA_HOME).
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
package file
