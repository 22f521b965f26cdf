package health

import (
	"context"
	"strings"
)

// TelemetryHealthChecker reports the simulated machine's operational flag.
type TelemetryHealthChecker struct {
	operational func() bool
}

func NewTelemetryHealthChecker(operational func() bool) *TelemetryHealthChecker {
	return &TelemetryHealthChecker{operational: operational}
}

func (c *TelemetryHealthChecker) Name() string {
	return "telemetry"
}

func (c *TelemetryHealthChecker) Check(ctx context.Context) (Status, string) {
	if !c.operational() {
		return StatusDegraded, "machine not operational"
	}
	return StatusHealthy, ""
}

// AssetsHealthChecker degrades when essential templates or styles are
// missing; pages still render what they can.
type AssetsHealthChecker struct {
	missing func() []string
}

func NewAssetsHealthChecker(missing func() []string) *AssetsHealthChecker {
	return &AssetsHealthChecker{missing: missing}
}

func (c *AssetsHealthChecker) Name() string {
	return "assets"
}

func (c *AssetsHealthChecker) Check(ctx context.Context) (Status, string) {
	if missing := c.missing(); len(missing) > 0 {
		return StatusDegraded, "missing: " + strings.Join(missing, ", ")
	}
	return StatusHealthy, ""
}
