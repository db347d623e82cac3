package alert

import "HalalGuardian/internal/directory"

// TargetRecipients resolves who must be notified for an incident at the given
// outlet. The outlet's Halal executive, if one exists, always comes first;
// MEDIUM and HIGH severities then append every top-management user in roster
// order. The result is deterministic for a given (outlet, severity) pair and
// may be empty when the outlet has no executive and the severity is LOW.
// That is not an error; the outlet simply has nobody on record to notify.
func TargetRecipients(users []directory.User, outletID int, severity Severity) []directory.User {
	var targets []directory.User

	for _, u := range users {
		if u.Role == directory.RoleHalalExecutive && u.OutletID != nil && *u.OutletID == outletID {
			targets = append(targets, u)
			break
		}
	}

	if severity.Escalates() {
		for _, u := range users {
			if u.Role == directory.RoleTopManagement {
				targets = append(targets, u)
			}
		}
	}

	return targets
}
