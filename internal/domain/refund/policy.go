package refund

import (
	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/property"

	"github.com/google/uuid"
)

// Policy is the tiered cancellation schedule for one (property, mode) pair.
// Storage guarantees at most one active policy per pair.
type Policy struct {
	ID       uuid.UUID
	Property property.Property
	Mode     booking.Mode
	IsActive bool
	Rules    []PolicyRule
}

// PolicyRule grants Percent back when the guest cancels at least
// DaysBeforeCheckin days out. Priority breaks ties between equal thresholds;
// lower value wins.
type PolicyRule struct {
	ID                uuid.UUID
	DaysBeforeCheckin int
	Percent           int
	Priority          int
}

// ResolveRule picks the rule with the largest satisfied threshold. No
// satisfied rule means no refund, which is a valid outcome rather than an
// error: the zero-value rule with ok=false signals it.
func (p *Policy) ResolveRule(daysBeforeCheckin int) (PolicyRule, bool) {
	best := -1
	for i, r := range p.Rules {
		if r.DaysBeforeCheckin > daysBeforeCheckin {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		if r.DaysBeforeCheckin > p.Rules[best].DaysBeforeCheckin {
			best = i
		} else if r.DaysBeforeCheckin == p.Rules[best].DaysBeforeCheckin && r.Priority < p.Rules[best].Priority {
			best = i
		}
	}
	if best < 0 {
		return PolicyRule{}, false
	}
	return p.Rules[best], true
}

// RefundAmount applies the resolved rule to the amount originally paid.
func (p *Policy) RefundAmount(paid booking.Money, daysBeforeCheckin int) (booking.Money, PolicyRule, bool) {
	rule, ok := p.ResolveRule(daysBeforeCheckin)
	if !ok {
		return booking.Money{}, PolicyRule{}, false
	}
	return paid.Percent(rule.Percent), rule, true
}
