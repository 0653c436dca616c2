package prefs

// Memory is an in-process Store used in tests and as a fallback when the
// prefs database cannot be opened. Values do not survive the process.
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	if _, ok := m.values[key]; !ok {
		return ErrNotFound
	}
	delete(m.values, key)
	return nil
}

func (m *Memory) Close() error { return nil }
