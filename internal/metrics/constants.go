package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Inventory metric names
const (
	MetricNameItemsAdvanced  = "inventory_items_advanced_total"
	MetricNameItemsExpired   = "inventory_items_expired_total"
	MetricNameDaysSimulated  = "inventory_days_simulated_total"
	MetricNameSimulationsRun = "inventory_simulations_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Inventory metric help text
const (
	HelpTextItemsAdvanced  = "Total number of items aged by one day"
	HelpTextItemsExpired   = "Total number of items that passed their sell-by date"
	HelpTextDaysSimulated  = "Total number of simulated business days"
	HelpTextSimulationsRun = "Total number of simulation runs"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
