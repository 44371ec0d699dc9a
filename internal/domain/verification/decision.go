package verification

import "time"

// CheckResult is one check's contribution to a verification decision.
type CheckResult struct {
	Kind      Kind
	Required  bool
	Outcome   CheckOutcome
	Label     string
	CheckedAt time.Time
}

// Decision aggregates the results of one verification run for a member in
// a community.
type Decision struct {
	CommunityID string
	MemberID    string
	Checks      []CheckResult
	CheckedAt   time.Time
}

// AllConditionsMet reports whether every required check produced a
// definitive positive answer. A policy requiring nothing is vacuously met.
func (d *Decision) AllConditionsMet() bool {
	for _, c := range d.Checks {
		if !c.Required {
			continue
		}
		if !c.Outcome.Definitive || !c.Outcome.Met {
			return false
		}
	}
	return true
}

// NeedsAuth reports whether any required check failed for lack of a valid
// credential.
func (d *Decision) NeedsAuth() bool {
	for _, c := range d.Checks {
		if c.Required && c.Outcome.NeedsAuth {
			return true
		}
	}
	return false
}

// HasTransientFailure reports whether any required check failed in a way
// that retrying may fix.
func (d *Decision) HasTransientFailure() bool {
	for _, c := range d.Checks {
		if c.Required && !c.Outcome.Definitive && !c.Outcome.NeedsAuth && c.Outcome.Err != "" {
			return true
		}
	}
	return false
}
