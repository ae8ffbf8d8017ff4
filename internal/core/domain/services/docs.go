// Package services provides domain services that derive behavior from the
// map session aggregate without belonging to it.
//
// The package includes:
//   - SelectionPresenter: derives the client-facing view flags (prompts,
//     route control, delivery options) from a session's selection state
package services
