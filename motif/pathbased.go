// Package motif implements the path-based 4-node enumeration: orbits
// reached by walking two hops from the edge endpoints through si and sj.
package motif

// pathBased enumerates 4-paths (orbit 3), tailed-triangle tails (orbit 7)
// and 4-cycles (orbit 6), plus 4-stars (orbit 5) and 4-path centers
// (orbit 4) when combinatorial mode is off.
//
// Symmetry breaking: whenever k and r occupy the same orbit (both in si,
// or both in sj), the r < k guard keeps exactly one of the two symmetric
// enumerations. The 4-cycle case carries no guard: si and sj are disjoint
// and only the sj side walks it, so each cycle is found exactly once.
func (s *edgeScan) pathBased() error {
	for k := range s.si {
		tK := s.typeOf[k]

		for _, r := range s.g.Neighbors(k) {
			if r == s.i || r == s.j {
				continue
			}
			switch {
			case !s.g.Connected(r, s.i) && !s.g.Connected(r, s.j):
				// r is two hops out on both sides: 4-path, edge orbit
				if err := s.emit(OrbitPath4Edge, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			case inSet(s.si, r) && r < k:
				// k-r edge inside si closes a triangle on i: tail orbit
				if err := s.emit(OrbitTailedTriTail, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			}
		}

		if s.comb {
			continue // orbits 5 and 4 come from the combinatorial deriver
		}

		for r := range s.si {
			if r < k && !s.g.Connected(r, k) {
				if err := s.emit(OrbitStar4, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			}
		}
		for r := range s.sj {
			if !s.g.Connected(r, k) {
				if err := s.emit(OrbitPath4Center, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			}
		}
	}

	for k := range s.sj {
		tK := s.typeOf[k]

		for _, r := range s.g.Neighbors(k) {
			if r == s.i || r == s.j {
				continue
			}
			switch {
			case !s.g.Connected(r, s.i) && !s.g.Connected(r, s.j):
				if err := s.emit(OrbitPath4Edge, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			case inSet(s.sj, r) && r < k:
				if err := s.emit(OrbitTailedTriTail, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			case inSet(s.si, r):
				// r sits on the i side, k on the j side: i-r-k-j closes a 4-cycle
				if err := s.emit(OrbitCycle4, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			}
		}

		if s.comb {
			continue
		}

		for r := range s.sj {
			if r < k && !s.g.Connected(r, k) {
				if err := s.emit(OrbitStar4, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// inSet reports membership of v in set.
func inSet(set map[int]struct{}, v int) bool {
	_, ok := set[v]

	return ok
}
