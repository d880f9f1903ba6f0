package application

// The status set is closed: anything outside these five labels is rejected at
// the service boundary, whatever the recruiter UI sends.
const (
	StatusPending     = "pending"
	StatusShortlisted = "shortlisted"
	StatusInterview   = "interview"
	StatusSelected    = "selected"
	StatusRejected    = "rejected"
)

// StatusFilterAll is the dashboard's "no filter" sentinel.
const StatusFilterAll = "all"

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusInterview, StatusSelected, StatusRejected:
		return true
	default:
		return false
	}
}

// TransitionPolicy controls how strictly status updates are checked.
type TransitionPolicy string

const (
	// PolicyFreeForm allows any recognized status from any other status.
	// This matches the recruiter dashboard's historical behavior, where
	// triage decisions are routinely revised.
	PolicyFreeForm TransitionPolicy = "free"

	// PolicyForward restricts updates to the hiring funnel:
	// pending -> shortlisted -> interview -> selected, with rejected
	// reachable from any non-terminal state.
	PolicyForward TransitionPolicy = "forward"
)

// ParsePolicy maps a config value to a policy, defaulting to free-form.
func ParsePolicy(v string) TransitionPolicy {
	if TransitionPolicy(v) == PolicyForward {
		return PolicyForward
	}
	return PolicyFreeForm
}

func isAllowedStatusTransition(policy TransitionPolicy, currentStatus, targetStatus string) bool {
	if policy == PolicyFreeForm {
		return true
	}

	switch currentStatus {
	case StatusPending:
		return targetStatus == StatusShortlisted || targetStatus == StatusRejected
	case StatusShortlisted:
		return targetStatus == StatusInterview || targetStatus == StatusRejected
	case StatusInterview:
		return targetStatus == StatusSelected || targetStatus == StatusRejected
	default:
		// selected and rejected are terminal under the forward policy
		return false
	}
}

// FilterByStatus returns the subset of details whose status matches exactly,
// or a copy of the whole list for the "all" filter. The input is never
// mutated; callers recompute from the authoritative list on every change.
// The result is always non-nil so an empty list serializes as an array.
func FilterByStatus(details []ApplicationDetailResponse, status string) []ApplicationDetailResponse {
	if status == "" || status == StatusFilterAll {
		all := make([]ApplicationDetailResponse, len(details))
		copy(all, details)
		return all
	}

	filtered := make([]ApplicationDetailResponse, 0, len(details))
	for _, d := range details {
		if d.Status == status {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
