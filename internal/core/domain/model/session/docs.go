// Package session implements the MapSession aggregate that owns the
// interactive pickup/destination selection flow.
//
// The aggregate tracks:
//   - State: the Empty -> OriginSet -> BothSet selection state machine,
//     including the re-entrant third-click restart
//   - AddressSelection: immutable origin/destination value objects binding a
//     coordinate to its resolved (or fallback) display address
//   - RouteResult: the transient, never-persisted active route
//   - the geolocation permission status of the session
//   - a generation counter that tags every user action so stale asynchronous
//     results (geocoding, routing, GPS capture) are discarded on arrival
//
// All state transitions go through aggregate methods; external code can never
// leave the session in a state that violates the selection invariants.
package session
