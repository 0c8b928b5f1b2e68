package httptransport

import "expvar"

var (
	metricStateSyncAppliedTotal = expvar.NewInt("state_sync_applied_total")
	metricStateSyncStaleTotal   = expvar.NewInt("state_sync_stale_total")
	metricStatePollTotal        = expvar.NewInt("state_poll_total")
	metricStatePollUnchanged    = expvar.NewInt("state_poll_unchanged_total")
)
