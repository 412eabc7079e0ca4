package storage

// MemStore is an in-memory Storer, used where records are built
// programmatically rather than loaded from assets (tests, mostly).
type MemStore[T ValidatingSpec] struct {
	records map[string]T
}

func NewMemStore[T ValidatingSpec](records map[string]T) *MemStore[T] {
	if records == nil {
		records = map[string]T{}
	}
	return &MemStore[T]{records: records}
}

func (s *MemStore[T]) Get(id string) T {
	val, ok := s.records[id]
	if !ok {
		var nilVal T
		return nilVal
	}
	return val
}

func (s *MemStore[T]) GetAll() map[string]T {
	vals := map[string]T{}
	for id, v := range s.records {
		vals[id] = v
	}
	return vals
}
