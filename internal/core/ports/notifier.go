package ports

// Notifier delivers a named event to all live sessions of a user. Publish
// is fire-and-forget: it never blocks the caller and never returns an
// error; delivery failures are logged by the implementation and dropped.
type Notifier interface {
	Publish(ownerID uint, event string, payload any)
}
