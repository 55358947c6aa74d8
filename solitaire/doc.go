// Package solitaire implements the board for Bulgarian Solitaire.
//
// A Board holds an ordered list of piles, each represented only by its card
// count. Every round takes one card from each pile and gathers them into a
// new pile at the end; piles that run out are removed. When the card total is
// a triangular number the game always reaches a fixed point of FinalPiles
// piles sized 1, 2, ..., FinalPiles in some order.
//
// # Basic Usage
//
//	b := solitaire.NewRandomBoard(rng, solitaire.Sequential)
//	for !b.IsDone() {
//	    b.PlayRound()
//	    fmt.Println(b)
//	}
//
// Boards built from user input should be checked with ValidatePiles first;
// NewBoard trusts its input and only asserts it in builds tagged
// solitairedebug.
package solitaire
