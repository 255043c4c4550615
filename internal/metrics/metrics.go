package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Fishing Metrics
var (
	Catches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatches,
			Help: HelpTextCatches,
		},
		[]string{LabelKind, LabelItem},
	)

	PerfectCatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePerfectCatches,
			Help: HelpTextPerfectCatches,
		},
	)

	FishLost = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFishLost,
			Help: HelpTextFishLost,
		},
		[]string{LabelItem},
	)

	TreasureOpened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTreasureOpened,
			Help: HelpTextTreasureOpened,
		},
	)

	TreasureItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreasureItems,
			Help: HelpTextTreasureItems,
		},
		[]string{LabelItem},
	)

	TrashFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTrashFallbacks,
			Help: HelpTextTrashFallbacks,
		},
		[]string{LabelReason},
	)

	PresentationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePresentationFailure,
			Help: HelpTextPresentationFailure,
		},
	)

	CatchQuality = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCatchQuality,
			Help:    HelpTextCatchQuality,
			Buckets: QualityBuckets,
		},
	)
)

// Registry and Store Metrics
var (
	RegistryReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRegistryReloads,
			Help: HelpTextRegistryReloads,
		},
		[]string{LabelResult},
	)

	RegistrySkippedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRegistrySkippedRecords,
			Help: HelpTextRegistrySkippedRecords,
		},
		[]string{LabelSource, LabelKind},
	)

	RegistryEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameRegistryEntries,
			Help: HelpTextRegistryEntries,
		},
		[]string{LabelKind},
	)

	ActorStoreCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActorStoreCache,
			Help: HelpTextActorStoreCache,
		},
		[]string{LabelResult},
	)
)
