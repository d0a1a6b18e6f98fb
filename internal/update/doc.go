// SPDX-License-Identifier: MPL-2.0

// Package update drives the per-repository update cycle. The Driver holds
// the repository list and a cursor, and each step changes into one
// repository, runs its tool's commands through a runner, and reports
// progress through a Hooks implementation. The driver is single-threaded;
// callers sequence all cursor operations.
package update
