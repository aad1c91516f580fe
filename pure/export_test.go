package pure

// WithHash replaces the table hash so tests can force collisions.
func WithHash[O any](t *Table[O], hash func([]byte) uint64) *Table[O] {
	t.hash = hash
	return t
}
