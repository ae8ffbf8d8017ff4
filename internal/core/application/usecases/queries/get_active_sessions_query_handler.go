package queries

import (
	"context"
	"sort"
	"time"

	"mapsession/internal/core/ports"
)

// GetActiveSessionsQueryHandler lists live sessions from the store,
// most recently active first.
type GetActiveSessionsQueryHandler struct {
	sessionRepository ports.SessionRepository
}

// NewGetActiveSessionsQueryHandler creates a handler for the session list.
func NewGetActiveSessionsQueryHandler(sessionRepository ports.SessionRepository) GetActiveSessionsQueryHandler {
	return GetActiveSessionsQueryHandler{
		sessionRepository: sessionRepository,
	}
}

// Handle executes the query.
func (h GetActiveSessionsQueryHandler) Handle(
	ctx context.Context, query GetActiveSessionsQuery,
) ([]GetActiveSessionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sessions, err := h.sessionRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]GetActiveSessionsQueryResponse, 0, len(sessions))

	for _, s := range sessions {
		responses = append(responses, GetActiveSessionsQueryResponse{
			ID:         s.ID(),
			State:      s.State(),
			Permission: s.Permission(),
			Idle:       now.Sub(s.LastActivity()),
		})
	}

	sort.Slice(responses, func(i, j int) bool {
		return responses[i].Idle < responses[j].Idle
	})

	return responses, nil
}
