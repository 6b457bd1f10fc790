package approval

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/heart-approvals/internal/domain"
)

// Summary is the current tally of one item.
type Summary struct {
	Item      *domain.Item
	Count     int
	Voters    []string
	Remaining []string
	Total     int
	Required  int
}

// Status returns the tally of the most recent item carrying trackingCode.
// Returns domain.ErrNotFound when no item carries it.
func (s *Service) Status(ctx context.Context, trackingCode string) (*Summary, error) {
	item, err := s.items.GetByTrackingCode(ctx, trackingCode)
	if err != nil {
		return nil, fmt.Errorf("approval: status %s: %w", trackingCode, err)
	}

	voters, err := s.votes.ListVoters(ctx, item.MessageID)
	if err != nil {
		return nil, fmt.Errorf("approval: status %s: %w", trackingCode, err)
	}

	remaining := make([]string, 0, len(s.policy.Approvers))
	for _, a := range s.policy.Approvers {
		if !slices.Contains(voters, a) {
			remaining = append(remaining, a)
		}
	}

	return &Summary{
		Item:      item,
		Count:     len(voters),
		Voters:    voters,
		Remaining: remaining,
		Total:     s.policy.Total(),
		Required:  s.policy.RequiredHearts,
	}, nil
}
