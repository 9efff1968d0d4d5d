package logx

const (
	FieldAirline         = "airline"
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCanvasID        = "canvas-id"
	FieldCount           = "count"
	FieldDurationMs      = "duration-ms"
	FieldEndpoint        = "endpoint"
	FieldError           = "error"
	FieldGeneration      = "generation"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
