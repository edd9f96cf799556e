package lottery

import (
	"sync"

	"github.com/KirkDiggler/prizedraw/internal/metrics"
	"github.com/KirkDiggler/prizedraw/internal/models"
)

// tenantContext is the unit of mutual exclusion for one tenant. state is nil
// until the first operation hydrates it from the repository, and is replaced
// (never edited in place) once a mutation has been persisted.
type tenantContext struct {
	mu    sync.Mutex
	state *models.TenantState
}

// contextStore maps tenant ids to their contexts. Its lock only guards the map,
// so operations on different tenants never wait on each other. Entries live
// for the life of the process, one per tenant id ever seen; the tenants gauge
// tracks how many there are.
type contextStore struct {
	mu      sync.Mutex
	tenants map[string]*tenantContext
}

func newContextStore() *contextStore {
	return &contextStore{
		tenants: make(map[string]*tenantContext),
	}
}

// resolve returns the context for a tenant, registering an empty one on first use
func (s *contextStore) resolve(tenantID string) *tenantContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	tc, ok := s.tenants[tenantID]
	if !ok {
		tc = &tenantContext{}
		s.tenants[tenantID] = tc
		metrics.SetTenants(len(s.tenants))
	}
	return tc
}
