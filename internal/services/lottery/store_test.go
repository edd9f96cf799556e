package lottery

func (s *contextStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tenants)
}

// hydrated reports whether the tenant currently holds a loaded state
func (s *contextStore) hydrated(tenantID string) bool {
	s.mu.Lock()
	tc, ok := s.tenants[tenantID]
	s.mu.Unlock()
	if !ok {
		return false
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.state != nil
}
