package application

import "github.com/studentperksph/perks-api/internal/domain/entity"

// UnlockDecision is the outcome of the action gate applied when a user
// tries to open a benefit's outbound link.
type UnlockDecision int

const (
	UnlockGranted UnlockDecision = iota
	UnlockNeedsLogin
	UnlockNeedsVerification
)

// CheckUnlock evaluates the gate against the session state at the moment
// of the action. Verification can complete while a view is open, so the
// result must never be cached.
func CheckUnlock(u *entity.User) UnlockDecision {
	switch {
	case u == nil:
		return UnlockNeedsLogin
	case !u.IsVerified:
		return UnlockNeedsVerification
	default:
		return UnlockGranted
	}
}
