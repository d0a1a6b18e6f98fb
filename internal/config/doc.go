// SPDX-License-Identifier: MPL-2.0

// Package config loads and normalizes the vcsup configuration.
//
// The on-disk format is TOML, but the normalizer itself consumes a
// loosely-typed mapping (string keys to string or string-list values) so
// embedding applications can hand it a structure from any source. The
// normalized Config is immutable after construction.
package config
