package domain

// AuditRepository handles persistence of the event chain and usage
// statistics, independent of the wider workspace repository.
type AuditRepository interface {
	RecordEvent(event Event) error
	LoadEvents() ([]Event, error)
	UpdateUsage(stats UsageStats) error
	LoadUsage() (*UsageStats, error)
}
