package eventparse

// MockParser is a canned Parser implementation for tests in other packages.
type MockParser struct {
	Result *Result
	Err    error
}

// Parse returns the canned result or error, recording nothing.
func (m *MockParser) Parse(string) (*Result, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}
