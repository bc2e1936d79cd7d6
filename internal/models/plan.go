package models

import (
	"fmt"

	"github.com/meetly/meetly/internal/common"
)

// Plan is an account's subscription tier. The tier governs how many
// meetings the account may hold at once.
type Plan string

const (
	PlanBase    Plan = "BASE"
	PlanPremium Plan = "PREMIUM"
)

// ParsePlan maps the exact tier name to a Plan. Store records are matched
// case-sensitively; interactive flows should upper-case user input first.
func ParsePlan(s string) (Plan, error) {
	switch Plan(s) {
	case PlanBase:
		return PlanBase, nil
	case PlanPremium:
		return PlanPremium, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownPlan, s)
	}
}

// MeetingLimit returns how many meetings an account on this plan may hold.
func (p Plan) MeetingLimit() int {
	if p == PlanPremium {
		return 5
	}
	return 2
}
