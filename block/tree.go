// Package block implements the generic OGS5 block-file engine: a scanner and
// parser for the `#MAIN_KEYWORD` / `$SUB_KEYWORD` / content-line grammar shared
// by all OGS5 input files, a schema-aware editor for building and changing the
// resulting keyword tree, and a deterministic serializer that writes it back
// out, including the legacy format quirks the simulator depends on.
package block

import "math"

// Row is one line of content, stored as its whitespace-separated tokens.
type Row []string

// Entry holds the content rows grouped under one sub keyword. The empty name
// is reserved: it marks content attached directly to the main keyword, with
// no $-line of its own. At most one such entry exists per block.
type Entry struct {
	Name string
	Rows []Row
}

// Block is one main-keyword section of a file.
type Block struct {
	Name    string
	Entries []*Entry
}

// Tree is the in-memory form of one block file: an ordered sequence of
// main-keyword blocks. A tree imposes no schema; any syntactically valid
// structure can be represented, whether or not a given dialect accepts it.
type Tree struct {
	Blocks []*Block
}

// Len reports the number of main-keyword blocks.
func (t *Tree) Len() int { return len(t.Blocks) }

// IsEmpty reports whether the tree holds no blocks at all.
func (t *Tree) IsEmpty() bool { return len(t.Blocks) == 0 }

// insertBlock places b at the given position, clamping out-of-range positions
// the way list insertion usually does.
func (t *Tree) insertBlock(at int, b *Block) {
	at = clampInsert(at, len(t.Blocks))
	t.Blocks = append(t.Blocks, nil)
	copy(t.Blocks[at+1:], t.Blocks[at:])
	t.Blocks[at] = b
}

func (b *Block) insertEntry(at int, e *Entry) {
	at = clampInsert(at, len(b.Entries))
	b.Entries = append(b.Entries, nil)
	copy(b.Entries[at+1:], b.Entries[at:])
	b.Entries[at] = e
}

func (e *Entry) insertRow(at int, row Row) {
	at = clampInsert(at, len(e.Rows))
	e.Rows = append(e.Rows, nil)
	copy(e.Rows[at+1:], e.Rows[at:])
	e.Rows[at] = row
}

// Last selects the final element, or the append position, wherever an index
// parameter is optional.
const Last = math.MaxInt

// normIndex resolves a possibly negative index against a sequence of length
// n. ok is false when the index falls outside the sequence on either side.
func normIndex(at, n int) (int, bool) {
	if at == Last {
		at = n - 1
	}
	if at < 0 {
		at += n
	}
	return at, at >= 0 && at < n
}

// clampInsert resolves an insert position: negative positions count from the
// end and anything out of range is clamped to the nearest end.
func clampInsert(at, n int) int {
	if at == Last {
		return n
	}
	if at < 0 {
		at += n
	}
	if at < 0 {
		return 0
	}
	if at > n {
		return n
	}
	return at
}
