package info

import (
	"context"

	"github.com/drblury/respweaver/outcome"
	"github.com/drblury/respweaver/probe"
)

// ProbeStatus is the payload of the status and probe endpoints.
type ProbeStatus struct {
	Status string `json:"status"`
}

// Status always succeeds with "HEALTHY".
func (ih *InfoHandler) Status(context.Context, outcome.Nil) outcome.Outcome[ProbeStatus, *probe.Error] {
	return outcome.Success[*probe.Error](ProbeStatus{Status: "HEALTHY"})
}

// Liveness runs the liveness checks and reports "ok" when all pass.
func (ih *InfoHandler) Liveness(ctx context.Context, _ outcome.Nil) outcome.Outcome[ProbeStatus, *probe.Error] {
	return ih.runChecks(ctx, ih.livenessChecks, "ok")
}

// Readiness runs the readiness checks and reports "ready" when all pass.
func (ih *InfoHandler) Readiness(ctx context.Context, _ outcome.Nil) outcome.Outcome[ProbeStatus, *probe.Error] {
	return ih.runChecks(ctx, ih.readinessChecks, "ready")
}

func (ih *InfoHandler) runChecks(ctx context.Context, checks []ProbeFunc, state string) outcome.Outcome[ProbeStatus, *probe.Error] {
	timeout := ih.probeTimeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	if err := probe.Run(ctx, timeout, checks...); err != nil {
		return outcome.Failure[ProbeStatus](err)
	}
	return outcome.Success[*probe.Error](ProbeStatus{Status: state})
}

func filterProbes(checks []ProbeFunc) []ProbeFunc {
	if len(checks) == 0 {
		return nil
	}

	filtered := make([]ProbeFunc, 0, len(checks))
	for _, check := range checks {
		if check != nil {
			filtered = append(filtered, check)
		}
	}

	if len(filtered) == 0 {
		return nil
	}

	return filtered
}
