package observe

import (
	"sync"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

// Notification represents an observe notification to send.
type Notification struct {
	// ObservationID identifies the observation.
	ObservationID uint32

	// Target is the observed part of the tree.
	Target Target

	// Values maps resource paths to their payloads.
	Values map[string][]byte

	// IsPriming indicates the initial notification.
	IsPriming bool

	// IsHeartbeat indicates a notification sent because pmax elapsed.
	IsHeartbeat bool

	// Timestamp is when the notification was generated.
	Timestamp time.Time
}

// Manager manages the observations of one client.
type Manager struct {
	mu sync.RWMutex

	config Config

	observations map[uint32]*Observation

	// Index by object for change dispatch
	objectIndex map[string][]*Observation

	onNotification func(Notification)
}

// NewManager creates a new observation manager with default configuration.
func NewManager() *Manager {
	return NewManagerWithConfig(DefaultConfig())
}

// NewManagerWithConfig creates a new observation manager with custom configuration.
func NewManagerWithConfig(config Config) *Manager {
	if config.MaxObservations <= 0 {
		config.MaxObservations = DefaultMaxObservations
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	return &Manager{
		config:       config,
		observations: make(map[uint32]*Observation),
		objectIndex:  make(map[string][]*Observation),
	}
}

// Observe creates a new observation and returns its ID. The priming
// notification carries the entries of current below target.
func (m *Manager) Observe(target Target, minPeriod, maxPeriod time.Duration, current map[string][]byte) (uint32, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if maxPeriod == 0 {
		return 0, ErrInvalidPeriod
	}
	if minPeriod > maxPeriod {
		if !m.config.AutoCorrectPeriods {
			return 0, ErrInvalidPeriod
		}
		minPeriod, maxPeriod = maxPeriod, minPeriod
	}

	m.mu.Lock()

	if len(m.observations) >= m.config.MaxObservations {
		m.mu.Unlock()
		return 0, ErrResourceExhausted
	}

	id := nextID()
	obs := NewObservation(id, target, minPeriod, maxPeriod, m.config.Clock)

	priming := filterValues(current, target)
	obs.SetPrimingValues(priming)

	m.observations[id] = obs
	m.objectIndex[target.Object] = append(m.objectIndex[target.Object], obs)

	onNotify := m.onNotification

	m.mu.Unlock()

	if onNotify != nil && len(priming) > 0 {
		onNotify(Notification{
			ObservationID: id,
			Target:        target,
			Values:        priming,
			IsPriming:     true,
			Timestamp:     m.config.Clock(),
		})
	}

	return id, nil
}

// Cancel removes an observation.
func (m *Manager) Cancel(id uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	obs, exists := m.observations[id]
	if !exists {
		return ErrObservationNotFound
	}

	obs.Deactivate()
	delete(m.observations, id)

	// The index slice may be iterated outside the lock, so it is replaced
	// rather than modified in place.
	key := obs.Target.Object
	list := make([]*Observation, 0, len(m.objectIndex[key]))
	for _, o := range m.objectIndex[key] {
		if o.ID != id {
			list = append(list, o)
		}
	}
	if len(list) == 0 {
		delete(m.objectIndex, key)
	} else {
		m.objectIndex[key] = list
	}

	return nil
}

// OnResourceChanged records a change for the matching observations.
// It makes Manager a model.Observer.
func (m *Manager) OnResourceChanged(path model.Path, payload []byte) {
	m.mu.RLock()
	list := m.objectIndex[path.Object]
	m.mu.RUnlock()

	for _, obs := range list {
		obs.RecordChange(path, payload)
	}
}

// ProcessNotifications checks all observations and sends pending
// notifications. Call it periodically, e.g. every second.
func (m *Manager) ProcessNotifications() {
	m.mu.RLock()
	list := make([]*Observation, 0, len(m.observations))
	for _, obs := range m.observations {
		list = append(list, obs)
	}
	onNotify := m.onNotification
	config := m.config
	m.mu.RUnlock()

	if onNotify == nil {
		return
	}

	for _, obs := range list {
		if values := obs.PendingNotification(config.SuppressBounceBack); values != nil {
			onNotify(Notification{
				ObservationID: obs.ID,
				Target:        obs.Target,
				Values:        values,
				Timestamp:     config.Clock(),
			})
		}

		if obs.NeedsHeartbeat() {
			n := Notification{
				ObservationID: obs.ID,
				Target:        obs.Target,
				IsHeartbeat:   true,
				Timestamp:     config.Clock(),
			}
			if config.HeartbeatMode == HeartbeatFull {
				n.Values = obs.LastValues()
			}

			obs.RecordHeartbeat()
			onNotify(n)
		}
	}
}

// ClearAll removes all observations, e.g. after a new registration.
func (m *Manager) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, obs := range m.observations {
		obs.Deactivate()
	}
	m.observations = make(map[uint32]*Observation)
	m.objectIndex = make(map[string][]*Observation)
}

// Count returns the number of active observations.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.observations)
}

// Get returns an observation by ID.
func (m *Manager) Get(id uint32) (*Observation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obs, exists := m.observations[id]
	if !exists {
		return nil, ErrObservationNotFound
	}
	return obs, nil
}

// OnNotification sets the callback for notifications.
func (m *Manager) OnNotification(fn func(Notification)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onNotification = fn
}

// filterValues returns the entries of values whose path lies below target.
func filterValues(values map[string][]byte, target Target) map[string][]byte {
	result := make(map[string][]byte)
	for key, payload := range values {
		p, ok := parseKey(key)
		if ok && target.Matches(p) {
			result[key] = payload
		}
	}
	return result
}
