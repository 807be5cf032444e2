package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldClientIP      = "client_ip"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldQuery         = "query"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldUserAgent     = "user_agent"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldTransactionID = "transaction_id"
	FieldDescription   = "description"
	FieldAmountCents   = "amount_cents"
	FieldCategory      = "category"
	FieldType          = "type"
	FieldFilter        = "filter"
	FieldCount         = "count"
	FieldBaseURL       = "base_url"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentWeb      = "web"
	ComponentAPI      = "api_client"
	ComponentService  = "service"
	ComponentStorage  = "storage"
	ComponentTemplate = "template"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpSummary  = "summary"
	OpRender   = "render"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)
