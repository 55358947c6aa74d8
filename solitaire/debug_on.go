//go:build solitairedebug

package solitaire

// Boards re-check their invariants after every mutation in debug builds.
const debugChecks = true
