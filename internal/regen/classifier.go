package regen

import "github.com/KirkDiggler/regen-engine/internal/domain/health"

// IsAllowed reports whether c passes the allow and deny lists.
//
// The deny list always wins. If an allow list is given, or injuries are
// auto-allowed, only listed conditions (and injuries under auto-allow) pass.
// Otherwise everything passes except injuries under auto-deny.
//
// An allow entry overrides auto-deny and a deny entry overrides auto-allow.
// Mixing lists with a mode is not recommended.
func IsAllowed(c *health.Condition, allow, deny KindSet, mode InjuryMode) bool {
	if deny != nil && deny.Contains(c.Kind()) {
		return false
	}

	if allow != nil || mode == InjuryModeAutoAllow {
		if allow.Contains(c.Kind()) {
			return true
		}
		return mode == InjuryModeAutoAllow && c.IsInjury()
	}

	if mode == InjuryModeAutoDeny && c.IsInjury() {
		return false
	}
	return true
}
