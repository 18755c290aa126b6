// Package motif implements the combinatorial derivation of orbits 4, 5,
// 9 and 11 from the already-enumerated orbits 6, 7, 10 and 12.
package motif

// deriveComb computes the counts of orbits 4, 5, 9 and 11 for the current
// edge via the closed-form identities of Rossi et al. (TKDD'2020,
// eqs. 19, 23, 26 and 30) instead of explicit traversal.
//
// For every unordered pair of types (t1, t2), t1 ≤ t2 in string order,
// the identities combine the per-type sizes of si, sj and tij with the
// matching typed count of the paired orbit (6, 7, 10 or 12 resp.).
// The resulting counts are identical to explicit enumeration.
func (s *edgeScan) deriveComb() error {
	// per-type sizes of the three partitions
	nSi := make(map[string]int64, len(s.sortedTypes))
	nSj := make(map[string]int64, len(s.sortedTypes))
	nTij := make(map[string]int64, len(s.sortedTypes))
	for v := range s.si {
		nSi[s.typeOf[v]]++
	}
	for v := range s.sj {
		nSj[s.typeOf[v]]++
	}
	for v := range s.tij {
		nTij[s.typeOf[v]]++
	}

	for a, t1 := range s.sortedTypes {
		for _, t2 := range s.sortedTypes[a:] {
			// orbit 4 (4-path center), eq. 19, paired with orbit 6
			g6, err := s.orbitCount(OrbitCycle4, t1, t2)
			if err != nil {
				return err
			}
			var n4 int64
			if t1 == t2 {
				n4 = nSi[t1]*nSj[t1] - g6
			} else {
				n4 = nSi[t1]*nSj[t2] + nSi[t2]*nSj[t1] - g6
			}
			if n4 > 0 {
				if err = s.emit(OrbitPath4Center, t1, t2, n4); err != nil {
					return err
				}
			}

			// orbit 5 (4-star), eq. 23, paired with orbit 7
			g7, err := s.orbitCount(OrbitTailedTriTail, t1, t2)
			if err != nil {
				return err
			}
			var n5 int64
			if t1 == t2 {
				n5 = choose2(nSi[t1]) + choose2(nSj[t1]) - g7
			} else {
				n5 = nSi[t1]*nSi[t2] + nSj[t1]*nSj[t2] - g7
			}
			if n5 > 0 {
				if err = s.emit(OrbitStar4, t1, t2, n5); err != nil {
					return err
				}
			}

			// orbit 9 (tailed-triangle tri-edge), eq. 26, paired with orbit 10
			g10, err := s.orbitCount(OrbitChordalCycleEdge, t1, t2)
			if err != nil {
				return err
			}
			var n9 int64
			if t1 == t2 {
				n9 = nTij[t1]*(nSi[t1]+nSj[t1]) - g10
			} else {
				n9 = nTij[t1]*(nSi[t2]+nSj[t2]) + nTij[t2]*(nSi[t1]+nSj[t1]) - g10
			}
			if n9 > 0 {
				if err = s.emit(OrbitTailedTriEdge, t1, t2, n9); err != nil {
					return err
				}
			}

			// orbit 11 (chordal-cycle center), eq. 30, paired with orbit 12
			g12, err := s.orbitCount(OrbitClique4, t1, t2)
			if err != nil {
				return err
			}
			var n11 int64
			if t1 == t2 {
				n11 = choose2(nTij[t1]) - g12
			} else {
				n11 = nTij[t1]*nTij[t2] - g12
			}
			if n11 > 0 {
				if err = s.emit(OrbitChordalCycleCenter, t1, t2, n11); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// orbitCount returns the current typed orbit count for the edge under
// (tI, tJ, t1, t2), or 0 if that key has not been emitted.
func (s *edgeScan) orbitCount(orbit int, t1, t2 string) (int64, error) {
	_, oh, err := s.hf.Hash(orbit, s.tI, s.tJ, t1, t2)
	if err != nil {
		return 0, err
	}

	return s.counts.OrbitCount[s.edgeID][oh], nil
}

// choose2 returns n·(n−1)/2.
func choose2(n int64) int64 {
	return n * (n - 1) / 2
}
