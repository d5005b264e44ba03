package observe

import (
	"bytes"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

// Observation errors.
var (
	ErrInvalidPeriod       = errors.New("invalid notification period")
	ErrResourceExhausted   = errors.New("maximum observations reached")
	ErrObservationNotFound = errors.New("observation not found")
	ErrInvalidTarget       = errors.New("invalid observation target")
)

// Default observation limits.
const (
	DefaultMinPeriod       = 1 * time.Second
	DefaultMaxPeriod       = 60 * time.Second
	DefaultMaxObservations = 50
)

// HeartbeatMode specifies what content is sent in heartbeat notifications.
type HeartbeatMode uint8

const (
	// HeartbeatEmpty sends only the observation ID and timestamp.
	HeartbeatEmpty HeartbeatMode = iota

	// HeartbeatFull sends all observed resources with their last values.
	HeartbeatFull
)

// String returns a human-readable heartbeat mode name.
func (m HeartbeatMode) String() string {
	switch m {
	case HeartbeatEmpty:
		return "EMPTY"
	case HeartbeatFull:
		return "FULL"
	default:
		return "UNKNOWN"
	}
}

// Config holds observation manager configuration.
type Config struct {
	// MaxObservations is the maximum number of observations allowed.
	MaxObservations int

	// HeartbeatMode specifies heartbeat content (empty or full).
	HeartbeatMode HeartbeatMode

	// SuppressBounceBack enables bounce-back suppression.
	SuppressBounceBack bool

	// AutoCorrectPeriods swaps pmin and pmax if pmin > pmax.
	AutoCorrectPeriods bool

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultConfig returns the default observation configuration.
func DefaultConfig() Config {
	return Config{
		MaxObservations:    DefaultMaxObservations,
		HeartbeatMode:      HeartbeatFull,
		SuppressBounceBack: true,
	}
}

// Target is the part of the tree an observation covers. Instance -1
// covers all instances, an empty Resource all resources.
type Target struct {
	Object   string
	Instance int
	Resource string
}

// Validate checks that the target is well formed.
func (t Target) Validate() error {
	if t.Object == "" {
		return ErrInvalidTarget
	}
	if t.Resource != "" && t.Instance < 0 {
		return ErrInvalidTarget
	}
	return nil
}

// Matches returns true if p lies below the target.
func (t Target) Matches(p model.Path) bool {
	if p.Object != t.Object {
		return false
	}
	if t.Instance >= 0 && p.Instance != t.Instance {
		return false
	}
	return t.Resource == "" || p.Resource == t.Resource
}

// String returns the target as "/object[/instance[/resource]]".
func (t Target) String() string {
	s := "/" + t.Object
	if t.Instance < 0 {
		return s
	}
	s += "/" + strconv.Itoa(t.Instance)
	if t.Resource != "" {
		s += "/" + t.Resource
	}
	return s
}

// Observation represents an active observation.
type Observation struct {
	mu sync.RWMutex

	// ID is the unique observation identifier.
	ID uint32

	// Target is the observed part of the tree.
	Target Target

	// MinPeriod is the minimum time between notifications.
	MinPeriod time.Duration

	// MaxPeriod is the maximum time without notification (heartbeat).
	MaxPeriod time.Duration

	now func() time.Time

	// lastNotified is when the last notification was sent.
	lastNotified time.Time

	// lastValues holds the last notified payloads by path.
	lastValues map[string][]byte

	// pending accumulates changes during the coalescing window.
	pending map[string][]byte

	// windowStart is when the first change occurred in the current window.
	windowStart time.Time

	hasChanges bool
	active     bool
}

// NewObservation creates a new observation. A nil clock means time.Now.
func NewObservation(id uint32, target Target, minPeriod, maxPeriod time.Duration, clock func() time.Time) *Observation {
	if clock == nil {
		clock = time.Now
	}
	return &Observation{
		ID:           id,
		Target:       target,
		MinPeriod:    minPeriod,
		MaxPeriod:    maxPeriod,
		now:          clock,
		lastNotified: clock(),
		lastValues:   make(map[string][]byte),
		pending:      make(map[string][]byte),
		active:       true,
	}
}

// IsActive returns whether the observation is active.
func (o *Observation) IsActive() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.active
}

// Deactivate marks the observation as inactive.
func (o *Observation) Deactivate() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.active = false
}

// RecordChange records a new payload for path.
// Returns true if this change starts the coalescing window.
func (o *Observation) RecordChange(path model.Path, payload []byte) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.active || !o.Target.Matches(path) {
		return false
	}

	isNewWindow := !o.hasChanges
	if isNewWindow {
		o.windowStart = o.now()
	}

	o.pending[path.String()] = append([]byte(nil), payload...)
	o.hasChanges = true

	return isNewWindow
}

// PendingNotification returns the payloads that should be notified, keyed
// by path, and clears the pending changes. It returns nil while the
// coalescing window is open or if nothing changed.
func (o *Observation) PendingNotification(suppressBounceBack bool) map[string][]byte {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.active || !o.hasChanges {
		return nil
	}
	if o.now().Sub(o.windowStart) < o.MinPeriod {
		return nil
	}

	values := make(map[string][]byte)
	for path, payload := range o.pending {
		if suppressBounceBack {
			if last, exists := o.lastValues[path]; exists && bytes.Equal(last, payload) {
				continue
			}
		}
		values[path] = payload
		o.lastValues[path] = payload
	}

	o.pending = make(map[string][]byte)
	o.hasChanges = false

	// Suppressed bounce-backs do not count as a notification for pmax.
	if len(values) == 0 {
		return nil
	}
	o.lastNotified = o.now()
	return values
}

// NeedsHeartbeat returns true if pmax has elapsed since the last notification.
func (o *Observation) NeedsHeartbeat() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if !o.active {
		return false
	}
	return o.now().Sub(o.lastNotified) >= o.MaxPeriod
}

// RecordHeartbeat records that a heartbeat was sent.
func (o *Observation) RecordHeartbeat() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lastNotified = o.now()
}

// SetPrimingValues sets the values sent with the priming notification.
func (o *Observation) SetPrimingValues(values map[string][]byte) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for path, payload := range values {
		o.lastValues[path] = payload
	}
	o.lastNotified = o.now()
}

// LastValues returns a copy of the last notified payloads.
func (o *Observation) LastValues() map[string][]byte {
	o.mu.RLock()
	defer o.mu.RUnlock()

	values := make(map[string][]byte, len(o.lastValues))
	for k, v := range o.lastValues {
		values[k] = v
	}
	return values
}

// TimeSinceLastNotification returns the time since the last notification.
func (o *Observation) TimeSinceLastNotification() time.Duration {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.now().Sub(o.lastNotified)
}

// TimeUntilWindowExpiry returns the time until the coalescing window
// closes, or 0 if no changes are pending.
func (o *Observation) TimeUntilWindowExpiry() time.Duration {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if !o.hasChanges {
		return 0
	}
	elapsed := o.now().Sub(o.windowStart)
	if elapsed >= o.MinPeriod {
		return 0
	}
	return o.MinPeriod - elapsed
}

var idGenerator atomic.Uint32

func nextID() uint32 {
	return idGenerator.Add(1)
}
