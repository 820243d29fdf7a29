package metrics

import "time"

// RecordDecision counts one randomize decision
func RecordDecision(strategy, decision string) {
	DecisionsTotal.WithLabelValues(strategy, decision).Inc()
}

// RecordInitialization counts one strategy initialization and its latency
func RecordInitialization(strategy string, started time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	InitializationsTotal.WithLabelValues(strategy, outcome).Inc()
	InitializeDuration.WithLabelValues(strategy).Observe(time.Since(started).Seconds())
}
