// Package motif implements the per-edge enumeration driver: neighborhood
// partitioning, 3-node emission, and dispatch to the 4-node subroutines.
package motif

import "github.com/katalvlaran/hinmotif/hin"

// edgeScan holds the enumeration state for one edge (i, j).
//
// The three sets partition the 2-neighborhood of the edge:
//
//	si  — neighbors of i only (each forms a 3-path ending at j)
//	sj  — neighbors of j only (each forms a 3-path ending at i)
//	tij — common neighbors (each forms a triangle with the edge)
type edgeScan struct {
	g      *hin.HIN
	hf     *Hasher
	counts *CountDict

	// typeOf[v] is the type label of node v, prefetched once per run.
	typeOf []string

	// sortedTypes is the distinct label set in ascending string order,
	// used by the combinatorial deriver's pair iteration.
	sortedTypes []string

	edgeID int
	i, j   int
	tI, tJ string

	si, sj, tij map[int]struct{}

	comb bool
}

// emit hashes one occurrence of orbit with third/fourth node types tK/tR
// and adds count to the edge's orbit, local, and global maps.
func (s *edgeScan) emit(orbit int, tK, tR string, count int64) error {
	mh, oh, err := s.hf.Hash(orbit, s.tI, s.tJ, tK, tR)
	if err != nil {
		return err
	}
	s.counts.Update(s.edgeID, mh, oh, count)

	return nil
}

// run counts all 3- and 4-node motifs edge (i, j) participates in:
// partition + 3-node motifs, then the path-based and triangle-based
// 4-node subroutines, then (in combinatorial mode) the algebraic
// derivation of orbits 4, 5, 9 and 11.
func (s *edgeScan) run() error {
	s.counts.EnsureEdge(s.edgeID)

	if err := s.partition(); err != nil {
		return err
	}
	if err := s.pathBased(); err != nil {
		return err
	}
	if err := s.triangleBased(); err != nil {
		return err
	}
	if s.comb {
		return s.deriveComb()
	}

	return nil
}

// partition splits the 2-neighborhood of (i, j) into si, sj and tij,
// emitting each triangle (orbit 2) and 3-path (orbit 1) as it is found.
func (s *edgeScan) partition() error {
	s.si = make(map[int]struct{}, s.g.Degree(s.i))
	s.sj = make(map[int]struct{}, s.g.Degree(s.j))
	s.tij = make(map[int]struct{})

	for _, k := range s.g.Neighbors(s.i) {
		if k != s.j {
			s.si[k] = struct{}{} // k may later move to tij
		}
	}

	for _, k := range s.g.Neighbors(s.j) {
		if k == s.i {
			continue
		}
		tK := s.typeOf[k]
		if _, common := s.si[k]; common {
			delete(s.si, k)
			s.tij[k] = struct{}{}
			if err := s.emit(OrbitTriangle, tK, NoType, 1); err != nil {
				return err
			}
		} else {
			s.sj[k] = struct{}{}
			if err := s.emit(OrbitPath3End, tK, NoType, 1); err != nil {
				return err
			}
		}
	}

	// remaining members of si are 3-path far ends attached to i
	for k := range s.si {
		if err := s.emit(OrbitPath3End, s.typeOf[k], NoType, 1); err != nil {
			return err
		}
	}

	return nil
}
