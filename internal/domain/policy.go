package domain

// CanModify reports whether actor may mutate a resource created by authorID.
func CanModify(actor Identity, authorID string) bool {
	return actor.IsAdmin || (actor.UserID != "" && actor.UserID == authorID)
}

// Authorize returns a forbidden error naming action and resource when actor
// may not mutate the resource. Callers check existence first.
func Authorize(actor Identity, authorID, action, resource string) error {
	if CanModify(actor, authorID) {
		return nil
	}
	return NewForbidden("you do not have permission to " + action + " this " + resource)
}
