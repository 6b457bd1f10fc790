package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Approval.validate(); err != nil {
		return fmt.Errorf("approval: %w", err)
	}

	if c.Webhook.Workers <= 0 {
		return fmt.Errorf("webhook.workers must be > 0 (got %d)", c.Webhook.Workers)
	}
	if c.Webhook.QueueSize <= 0 {
		return fmt.Errorf("webhook.queue_size must be > 0 (got %d)", c.Webhook.QueueSize)
	}

	if strings.TrimSpace(c.WhatsApp.VerifyToken) == "" {
		return fmt.Errorf("whatsapp.verify_token must not be blank")
	}

	return nil
}

func (a *ApprovalConfig) validate() error {
	if a.RequiredHearts <= 0 {
		return fmt.Errorf("required_hearts must be > 0 (got %d)", a.RequiredHearts)
	}

	a.Approvers = ParseApprovers(a.ApproversRaw)
	a.GroupID = strings.TrimSpace(a.GroupID)

	return nil
}

// ParseApprovers parses a comma-separated list of approver identifiers.
// Entries are trimmed; empty entries and duplicates are dropped; order is kept.
func ParseApprovers(raw string) []string {
	parts := strings.Split(raw, ",")
	approvers := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		approvers = append(approvers, p)
	}

	return approvers
}
