package model

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
)

// Client errors.
var (
	ErrDuplicateObject = errors.New("duplicate object")
	ErrObjectNotFound  = errors.New("object not found")
	ErrObjectLimit     = errors.New("object limit reached")
)

// Config holds client limits.
type Config struct {
	// MaxObjects limits the number of objects (0 = unlimited).
	MaxObjects int

	// MaxInstancesPerObject limits instances per object (0 = unlimited).
	MaxInstancesPerObject int

	// MaxResourcesPerInstance limits resources per object instance,
	// counting each resource instance (0 = unlimited).
	MaxResourcesPerInstance int

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration without limits.
func DefaultConfig() Config {
	return Config{}
}

// Observer is notified when an observable resource changes.
type Observer interface {
	// OnResourceChanged is called with the path and new payload.
	OnResourceChanged(path Path, payload []byte)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(path Path, payload []byte)

// OnResourceChanged calls f.
func (f ObserverFunc) OnResourceChanged(path Path, payload []byte) { f(path, payload) }

// Client is the root of a resource tree.
type Client struct {
	mu sync.RWMutex

	config  Config
	objects map[string]*Object

	observers []observerEntry
	nextObs   int
}

type observerEntry struct {
	id  int
	obs Observer
}

// NewClient creates an empty client.
func NewClient(cfg Config) *Client {
	return &Client{
		config:  cfg,
		objects: make(map[string]*Object),
	}
}

// CreateObject creates a new object with the given name.
func (c *Client) CreateObject(name string) (*Object, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.objects[name]; exists {
		return nil, ErrDuplicateObject
	}
	if c.config.MaxObjects > 0 && len(c.objects) >= c.config.MaxObjects {
		return nil, ErrObjectLimit
	}

	obj := newObject(c, name)
	c.objects[name] = obj
	c.debug("object created", "object", name)
	return obj, nil
}

// DeleteObject removes an object and everything below it.
func (c *Client) DeleteObject(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.objects[name]; !exists {
		return ErrObjectNotFound
	}
	delete(c.objects, name)
	c.debug("object deleted", "object", name)
	return nil
}

// Object returns an object by name.
func (c *Client) Object(name string) (*Object, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	obj, exists := c.objects[name]
	if !exists {
		return nil, ErrObjectNotFound
	}
	return obj, nil
}

// Objects returns all objects ordered by numeric name.
func (c *Client) Objects() []*Object {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*Object, 0, len(c.objects))
	for _, obj := range c.objects {
		result = append(result, obj)
	}
	sort.Slice(result, func(i, j int) bool {
		return lessName(result[i].name, result[j].name)
	})
	return result
}

// ObjectCount returns the number of objects.
func (c *Client) ObjectCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.objects)
}

// Resolve finds the node addressed by a full path. For a resource of a
// multi-instance resource, the path must name the resource instance.
func (c *Client) Resolve(p Path) (Node, error) {
	obj, err := c.Object(p.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.Instance(p.Instance)
	if !ok {
		return nil, ErrInstanceNotFound
	}
	res, ok := inst.Resource(p.Resource)
	if !ok {
		return nil, ErrResourceNotFound
	}
	if !res.MultipleInstances() {
		return res, nil
	}
	ri, ok := res.ResourceInstance(p.ResourceInstance)
	if !ok {
		return nil, ErrResourceInstanceNotFound
	}
	return ri, nil
}

// Subscribe adds an observer for change notifications. The returned
// function removes it again.
func (c *Client) Subscribe(o Observer) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextObs++
	id := c.nextObs
	c.observers = append(c.observers, observerEntry{id: id, obs: o})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, e := range c.observers {
			if e.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// notify tells all observers about a change.
func (c *Client) notify(path Path, payload []byte) {
	c.mu.RLock()
	obs := make([]Observer, 0, len(c.observers))
	for _, e := range c.observers {
		obs = append(obs, e.obs)
	}
	c.mu.RUnlock()

	for _, o := range obs {
		o.OnResourceChanged(path, payload)
	}
}

func (c *Client) debug(msg string, args ...any) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, args...)
	}
}
