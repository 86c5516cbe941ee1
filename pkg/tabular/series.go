package tabular

// memSeries is the in-memory column shared by the native backends. Values are
// normalized at table construction.
type memSeries struct {
	values []any
}

func (s *memSeries) Len() int { return len(s.values) }

func (s *memSeries) Value(i int) any {
	v := s.values[i]
	if IsNull(v) {
		return nil
	}
	return v
}

func (s *memSeries) IsNull(i int) bool { return IsNull(s.values[i]) }

func (s *memSeries) NullCount() int {
	n := 0
	for _, v := range s.values {
		if IsNull(v) {
			n++
		}
	}
	return n
}

func (s *memSeries) DistinctCount() int {
	seen := make(map[any]struct{}, len(s.values))
	hasNull := false
	n := 0
	for _, v := range s.values {
		if IsNull(v) {
			// NaN is not a usable map key, fold all nulls into one value.
			if !hasNull {
				hasNull = true
				n++
			}
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			n++
		}
	}
	return n
}
