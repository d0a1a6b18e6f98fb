// SPDX-License-Identifier: MPL-2.0

// Package discovery locates repositories on disk. It resolves the
// configured root paths against the user's home directory and expands
// each root breadth-first into the list of repository directories,
// identified by the marker directory of a configured tool.
package discovery
