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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Fishing metric names
const (
	MetricNameCatches             = "fishing_catches_total"
	MetricNamePerfectCatches      = "fishing_perfect_catches_total"
	MetricNameFishLost            = "fishing_fish_lost_total"
	MetricNameTreasureOpened      = "fishing_treasure_opened_total"
	MetricNameTreasureItems       = "fishing_treasure_items_total"
	MetricNameTrashFallbacks      = "fishing_trash_fallbacks_total"
	MetricNamePresentationFailure = "fishing_presentation_failures_total"
	MetricNameCatchQuality        = "fishing_catch_quality"
)

// Registry and store metric names
const (
	MetricNameRegistryReloads        = "registry_reloads_total"
	MetricNameRegistrySkippedRecords = "registry_skipped_records_total"
	MetricNameRegistryEntries        = "registry_entries"
	MetricNameActorStoreCache        = "actor_store_cache_lookups_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Fishing metric help text
const (
	HelpTextCatches             = "Total number of landed catches by kind"
	HelpTextPerfectCatches      = "Total number of perfect fish catches"
	HelpTextFishLost            = "Total number of fish lost during the minigame"
	HelpTextTreasureOpened      = "Total number of treasure chests opened"
	HelpTextTreasureItems       = "Total number of items looted from treasure chests"
	HelpTextTrashFallbacks      = "Total number of catches that fell back to the generic trash item"
	HelpTextPresentationFailure = "Total number of minigames that could not be started"
	HelpTextCatchQuality        = "Quality of landed fish"
)

// Registry and store metric help text
const (
	HelpTextRegistryReloads        = "Total number of entry registry rebuilds"
	HelpTextRegistrySkippedRecords = "Total number of malformed content records skipped during reload"
	HelpTextRegistryEntries        = "Number of entries in the current registry snapshot"
	HelpTextActorStoreCache        = "Actor store cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelKind   = "kind"
	LabelItem   = "item"
	LabelReason = "reason"
	LabelSource = "source"
	LabelResult = "result"
)

// Label values
const (
	KindFish     = "fish"
	KindTrash    = "trash"
	KindTreasure = "treasure"
	KindEffect   = "effect"
	KindTraits   = "traits"
	KindLocation = "location"

	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// QualityBuckets covers normal, silver, gold and iridium
var QualityBuckets = []float64{0, 1, 2, 4}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
