//go:build !solitairedebug

package solitaire

const debugChecks = false
