// internal/event/types.go
package event

const (
	ProjectileSpawned     EventType = "ProjectileSpawned"     // Data: types.EntityID
	ProjectileIntercepted EventType = "ProjectileIntercepted" // Data: Hit
	ProjectileImpacted    EventType = "ProjectileImpacted"    // Data: Hit
	InterceptorLaunched   EventType = "InterceptorLaunched"   // Data: types.EntityID
	InterceptorDetonated  EventType = "InterceptorDetonated"  // Data: types.EntityID
	InterceptorExpired    EventType = "InterceptorExpired"    // Data: types.EntityID
	WaveAdvanced          EventType = "WaveAdvanced"          // Data: int, the new level
	SessionEnded          EventType = "SessionEnded"          // Data: component.Outcome
	TickCompleted         EventType = "TickCompleted"         // Data: time.Duration
)

// All lists every event type, for listeners that want everything.
var All = []EventType{
	ProjectileSpawned,
	ProjectileIntercepted,
	ProjectileImpacted,
	InterceptorLaunched,
	InterceptorDetonated,
	InterceptorExpired,
	WaveAdvanced,
	SessionEnded,
	TickCompleted,
}
