package model

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

type Alert struct {
	Severity  Severity `json:"tipo"`
	Message   string   `json:"mensagem"`
	Timestamp string   `json:"timestamp"`
}

const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006 15:04:05"
	ClockLayout    = "15:04:05"
)
