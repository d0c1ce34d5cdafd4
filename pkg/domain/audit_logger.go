package domain

// AuditLogger records auditable actions. Services depend on this interface
// rather than on a concrete chain implementation.
type AuditLogger interface {
	Log(action string, actor string, metadata map[string]interface{}) error
}
