package tt

import "github.com/bran/bridgesolve/internal/engine"

// Bounds is a closed interval of NS trick counts for the remaining
// sub-game: 0 <= Lower <= Upper <= tricks_remaining.
type Bounds struct {
	Lower, Upper int
}

type entry struct {
	hash  uint64
	valid bool
	b     Bounds
}

// Table is the pattern-indexed transposition table: a power-of-two
// sized, open-addressed (single-slot, collisions overwrite) map from
// Descriptor to Bounds, grounded on taktician's ai-minimax.go
// table []tableEntry / hash & (size-1) scheme.
type Table struct {
	entries []entry
	mask    uint64
}

// NewTable allocates a table sized to the next power of two >= size.
func NewTable(size int) *Table {
	n := 1
	for n < size {
		n <<= 1
	}
	if n == 0 {
		n = 1
	}
	return &Table{entries: make([]entry, n), mask: uint64(n - 1)}
}

// Probe looks up the bounds stored under hash h. ok is false when the
// slot is empty or holds a different hash. Only the 64-bit hash is
// compared; d itself is not consulted, so two descriptors with the
// same hash share one entry.
func (t *Table) Probe(d Descriptor, h uint64) (Bounds, bool) {
	e := &t.entries[h&t.mask]
	if !e.valid || e.hash != h {
		return Bounds{}, false
	}
	return e.b, true
}

// Store writes d's bounds, overwriting whatever previously occupied
// the slot.
func (t *Table) Store(h uint64, b Bounds) {
	t.entries[h&t.mask] = entry{hash: h, valid: true, b: b}
}

// cutoffEntry identifies a (descriptor-hash, seat) pair for the killer
// cache.
type cutoffEntry struct {
	hash  uint64
	valid bool
	seat  engine.Seat
	card  engine.Card
}

// CutoffCache records, per pattern descriptor and seat, the most
// recent card observed to produce a beta-cutoff — tried first on the
// next visit to an equivalent position (a killer-move heuristic).
type CutoffCache struct {
	entries []cutoffEntry
	mask    uint64
}

// NewCutoffCache allocates a cache sized to the next power of two >= size.
func NewCutoffCache(size int) *CutoffCache {
	n := 1
	for n < size {
		n <<= 1
	}
	if n == 0 {
		n = 1
	}
	return &CutoffCache{entries: make([]cutoffEntry, n), mask: uint64(n - 1)}
}

// Hint returns the killer card for (h, seat), if the slot is occupied
// by a matching hash and seat.
func (c *CutoffCache) Hint(h uint64, seat engine.Seat) (engine.Card, bool) {
	e := &c.entries[h&c.mask]
	if !e.valid || e.hash != h || e.seat != seat {
		return engine.NoCard, false
	}
	return e.card, true
}

// Record stores card as the killer for (h, seat).
func (c *CutoffCache) Record(h uint64, seat engine.Seat, card engine.Card) {
	c.entries[h&c.mask] = cutoffEntry{hash: h, valid: true, seat: seat, card: card}
}
