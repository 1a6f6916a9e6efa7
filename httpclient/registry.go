package httpclient

import (
	"fmt"
	"slices"
	"sync"
)

// Registry holds one client per project profile.
type Registry struct {
	clients     map[string]*Client
	mu          sync.RWMutex
	defaultOpts []Option
	defaultName string
}

func NewRegistry(defaultOpts ...Option) *Registry {
	return &Registry{
		clients:     make(map[string]*Client),
		mu:          sync.RWMutex{},
		defaultOpts: defaultOpts,
		defaultName: "",
	}
}

// Register creates a client for endpoint. The first registered client becomes
// the default.
func (r *Registry) Register(name, endpoint string, opts ...Option) *Registry {
	allOpts := make([]Option, 0, len(r.defaultOpts)+len(opts))
	allOpts = append(allOpts, r.defaultOpts...)
	allOpts = append(allOpts, opts...)

	client := New(endpoint, allOpts...)

	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, ok := r.clients[name]; ok {
		previous.CloseIdleConnections()
	}

	r.clients[name] = client

	if r.defaultName == "" {
		r.defaultName = name
	}

	return r
}

func (r *Registry) Client(name string) *Client {
	client, ok := r.GetClient(name)
	if !ok {
		panic(fmt.Sprintf("httpclient: client %q not registered", name))
	}

	return client
}

func (r *Registry) GetClient(name string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[name]

	return client, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.GetClient(name)

	return ok
}

func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownClient, name)
	}

	r.defaultName = name

	return nil
}

func (r *Registry) Default() (*Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[r.defaultName]
	if !ok {
		return nil, ErrUnknownClient
	}

	return client, nil
}

func (r *Registry) DefaultName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.defaultName
}

func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[name]
	if !ok {
		return false
	}

	client.CloseIdleConnections()
	delete(r.clients, name)

	if r.defaultName == name {
		r.defaultName = ""
	}

	return true
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clients)
}
