package history

import "context"

// MockSource serves fixed listings, or a fixed failure, in place of a
// repository. Each Load hands out fresh slices so callers cannot alter
// what later loads return.
type MockSource struct {
	History *History
	Error   error

	// Calls counts Load invocations.
	Calls int
}

// NewMockSource returns a source that yields h, or err when err is set.
func NewMockSource(h *History, err error) *MockSource {
	return &MockSource{History: h, Error: err}
}

// Load returns a copy of the configured history. A configured error wins
// and no partial history is returned with it.
func (m *MockSource) Load(ctx context.Context) (*History, error) {
	m.Calls++
	if err := ctx.Err(); err != nil {
		return nil, &QueryError{Op: OpListHistory, Err: err}
	}
	if m.Error != nil {
		return nil, m.Error
	}
	if m.History == nil {
		return &History{}, nil
	}
	return &History{
		Identifiers: append([]string(nil), m.History.Identifiers...),
		Ancestry:    append([]string(nil), m.History.Ancestry...),
	}, nil
}
