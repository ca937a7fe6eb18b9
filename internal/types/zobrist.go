//
// Corvid - a UCI chess engine
//
// MIT License
//
// Copyright (c) 2021-2026 Corvid Chess Engine Contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

// splitMix64 is the xorshift64star pseudo-random number generator,
// based on code written and dedicated to the public domain by
// Sebastiano Vigna (2014). It has no warm-up requirement and a period
// of 2^64-1, which is all that is needed to seed a fixed table of
// Zobrist keys deterministically across engine builds.
type splitMix64 struct {
	s uint64
}

func newSplitMix64(seed uint64) *splitMix64 {
	if seed == 0 {
		seed = 1
	}
	return &splitMix64{s: seed}
}

func (r *splitMix64) next() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * 2685821657736338717
}

// Key is a 64-bit Zobrist hash of a position.
type Key uint64

// CastlingRights is a 4-bit set of the remaining castling rights,
// one bit per {white,black}x{kingside,queenside} combination.
type CastlingRights uint8

// Castling right bits and their combinations.
const (
	CastlingNone       CastlingRights = 0
	WhiteKingside      CastlingRights = 1 << 0
	WhiteQueenside     CastlingRights = 1 << 1
	BlackKingside      CastlingRights = 1 << 2
	BlackQueenside     CastlingRights = 1 << 3
	CastlingRightsAll  CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
	CastlingRightsSize                = 16
)

// Has reports whether cr contains the given right.
func (cr CastlingRights) Has(right CastlingRights) bool {
	return cr&right != 0
}

// zobristKeys holds every random key needed to incrementally maintain
// a position's hash: one per (piece, square), one per castling rights
// combination, one per en passant file and one for the side to move.
type zobristKeys struct {
	psq      [PieceLength][SquareLength]Key
	castling [CastlingRightsSize]Key
	epFile   [FileLength]Key
	sideKey  Key
}

// Zobrist holds the process-wide table of random keys used to hash
// positions. The seed is fixed so that two runs of the engine (and
// the engine's own test suite) agree on the same hash values.
var Zobrist = newZobristKeys(1070372)

func newZobristKeys(seed uint64) *zobristKeys {
	r := newSplitMix64(seed)
	z := &zobristKeys{}
	for p := WhitePawn; p < PieceLength; p++ {
		for s := SqA1; s <= SqH8; s++ {
			z.psq[p][s] = Key(r.next())
		}
	}
	for cr := 0; cr < CastlingRightsSize; cr++ {
		z.castling[cr] = Key(r.next())
	}
	for f := FileA; f <= FileH; f++ {
		z.epFile[f] = Key(r.next())
	}
	z.sideKey = Key(r.next())
	return z
}

// PieceSquareKey returns the key to xor in/out when placing or
// removing piece p on square s.
func (z *zobristKeys) PieceSquareKey(p Piece, s Square) Key {
	return z.psq[p][s]
}

// CastlingKey returns the key for a given castling rights bitmask.
func (z *zobristKeys) CastlingKey(cr CastlingRights) Key {
	return z.castling[cr]
}

// EnPassantKey returns the key for an en passant target on file f.
func (z *zobristKeys) EnPassantKey(f File) Key {
	return z.epFile[f]
}

// SideKey returns the key xored in when it is Black to move.
func (z *zobristKeys) SideKey() Key {
	return z.sideKey
}
