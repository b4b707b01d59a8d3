package kmeans

// memberStore accumulates the members assigned to one cluster during a Lloyd step.
type memberStore struct {
	sum   float64
	count int
}

func (s *memberStore) add(value float64) {
	s.sum += value
	s.count += 1
}

// mean reports the centroid of the accumulated members.
// ok is false when the cluster received no members.
func (s *memberStore) mean() (v float64, ok bool) {
	if s.count == 0 {
		return 0, false
	}
	return s.sum / float64(s.count), true
}

func (s *memberStore) empty() bool { return s.count == 0 }
