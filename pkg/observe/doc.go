// Package observe implements LWM2M observations for a local resource tree.
//
// A server observes an object, an object instance or a single resource and
// is told about changes of the observable resources below that target. The
// observation manager handles the notification attributes, coalescing and
// bounce-back suppression.
//
// # Notification Attributes
//
// Each observation has:
//   - pmin: minimum period between notifications (coalescing window)
//   - pmax: maximum period without notification (heartbeat)
//   - target: object, object instance or resource being observed
//
// # Coalescing Behavior
//
// When multiple changes occur within pmin, only the final value is sent.
// The coalescing window starts with the first change after the previous
// notification.
//
// # Bounce-Back Suppression
//
// If a value changes and then returns to its last notified value within the
// coalescing window, no notification is sent for it.
//
// # Priming and Heartbeat
//
// When an observation is established, a priming notification carrying the
// current values is sent immediately. A heartbeat is sent when pmax elapses
// without a notification.
//
// # Wiring
//
// Manager implements model.Observer. Subscribe it to a model.Client and call
// ProcessNotifications periodically:
//
//	m := observe.NewManager()
//	unsubscribe := client.Subscribe(m)
//	defer unsubscribe()
package observe
