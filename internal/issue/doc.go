// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It defines an error type carrying remediation suggestions, plus a small
// catalog of Markdown-rendered guidance cards for the failures an operator
// is most likely to hit (no config file, unparsable config, nothing to
// update).
package issue
