package kvstore

type InMemoryStore struct {
	values map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{values: make(map[string][]byte)}
}

func (inMem *InMemoryStore) GetStorageType() string {
	return "inmemory"
}

func (inMem *InMemoryStore) Get(key string) ([]byte, bool, error) {
	value, ok := inMem.values[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers cannot mutate the stored value in place.
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (inMem *InMemoryStore) Set(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	inMem.values[key] = stored
	return nil
}

func (inMem *InMemoryStore) Delete(key string) error {
	delete(inMem.values, key)
	return nil
}

func (inMem *InMemoryStore) Close() error {
	return nil
}
