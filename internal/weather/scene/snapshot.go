package scene

// Snapshot captures the scene state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Thunder  bool
	Paused   bool
	Drops    int
	Bolts    int
	Segments int // Total segment count across all live bolts
}

// Snapshot returns the current scene snapshot for determinism verification.
func (s *Scene) Snapshot() Snapshot {
	segments := 0
	for _, b := range s.bolts {
		segments += len(b.Segments())
	}

	return Snapshot{
		Tick:     s.tick,
		Thunder:  s.thunder,
		Paused:   s.paused,
		Drops:    len(s.field.Drops()),
		Bolts:    len(s.bolts),
		Segments: segments,
	}
}
