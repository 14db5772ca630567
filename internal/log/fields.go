package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldProvider   = "provider"
	FieldMethod     = "method"
	FieldEndpoint   = "endpoint"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldMonth      = "month"
	FieldResource   = "resource"
	FieldOperation  = "operation"
	FieldError      = "error"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentConfig    = "config"
	ComponentClient    = "client"
	ComponentDashboard = "dashboard"
)

// Operations defines standard operation names
const (
	OpLogin   = "login"
	OpList    = "list"
	OpCreate  = "create"
	OpAssign  = "assign"
	OpRefresh = "refresh"
)
