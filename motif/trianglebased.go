// Package motif implements the triangle-based 4-node enumeration: orbits
// reached by walking from the common-neighbor set tij.
package motif

// triangleBased enumerates 4-cliques (orbit 12), chordal-cycle edges
// (orbit 10) and tailed-triangle centers (orbit 8), plus chordal-cycle
// centers (orbit 11) and tailed-triangle tri-edges (orbit 9) when
// combinatorial mode is off.
//
// Each k in tij forms a triangle with (i, j); r ranges over k's other
// neighbors. The r < k guards break the k↔r symmetry for orbits 12/11.
func (s *edgeScan) triangleBased() error {
	for k := range s.tij {
		tK := s.typeOf[k]

		for _, r := range s.g.Neighbors(k) {
			if r == s.i || r == s.j {
				continue
			}
			switch {
			case inSet(s.tij, r) && r < k:
				// two triangles sharing (i, j), k-r adjacent: 4-clique
				if err := s.emit(OrbitClique4, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			case inSet(s.si, r) || inSet(s.sj, r):
				if err := s.emit(OrbitChordalCycleEdge, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			case !inSet(s.si, r) && !inSet(s.sj, r) && !inSet(s.tij, r):
				// r hangs off k only: tailed triangle, center orbit
				if err := s.emit(OrbitTailedTriCenter, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			}
		}

		if s.comb {
			continue // orbits 11 and 9 come from the combinatorial deriver
		}

		for r := range s.tij {
			if r < k && !s.g.Connected(r, k) {
				if err := s.emit(OrbitChordalCycleCenter, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			}
		}
		for r := range s.si {
			if !s.g.Connected(r, k) {
				if err := s.emit(OrbitTailedTriEdge, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			}
		}
		for r := range s.sj {
			if !s.g.Connected(r, k) {
				if err := s.emit(OrbitTailedTriEdge, tK, s.typeOf[r], 1); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
