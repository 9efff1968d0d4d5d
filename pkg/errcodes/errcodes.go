package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Stats API.
	StatsAPIUnavailable failure.ErrorCode = "StatsAPIUnavailable"
	StatsAPIBadPayload  failure.ErrorCode = "StatsAPIBadPayload"

	// Dashboard.
	InvalidSearchQuery failure.ErrorCode = "InvalidSearchQuery"
	NoAirlinesSelected failure.ErrorCode = "NoAirlinesSelected"
	EmptyChart         failure.ErrorCode = "EmptyChart"
	CanvasNotFound     failure.ErrorCode = "CanvasNotFound"
	StaleChartUpdate   failure.ErrorCode = "StaleChartUpdate"
)
