package memory

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps company slugs to their stores. It is constructed once and
// injected wherever company data is needed, keeping store lifecycle explicit
// instead of hiding datasets in package-level state.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// Companies lists registered company slugs in lexical order.
func (r *Registry) Companies() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	companies := make([]string, 0, len(r.stores))
	for name := range r.stores {
		companies = append(companies, name)
	}
	sort.Strings(companies)
	return companies
}

// Get returns the store for a registered company.
func (r *Registry) Get(company string) (*Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[company]
	if !ok {
		return nil, fmt.Errorf("company %q is not registered", company)
	}
	return store, nil
}

// Ensure returns the store for a company, creating an empty one on first use.
func (r *Registry) Ensure(company string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[company]
	if !ok {
		store = NewStore()
		r.stores[company] = store
	}
	return store
}
