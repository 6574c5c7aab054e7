package metrics

import (
	"sync"
	"time"
)

// FailureKind classifies why an analysis did not produce a score
type FailureKind string

const (
	FailureExtraction    FailureKind = "extraction"
	FailureScoring       FailureKind = "scoring"
	FailureMissingInput  FailureKind = "missing_input"
	FailureInputTooLarge FailureKind = "input_too_large"
	FailureInternal      FailureKind = "internal"
)

// maxDurationsKept bounds the rolling window of recent execution times
const maxDurationsKept = 100

// AnalysisMetricsData represents analysis metrics data without mutex (safe for copying)
type AnalysisMetricsData struct {
	AnalysesStarted      int64                 `json:"analyses_started"`
	AnalysesCompleted    int64                 `json:"analyses_completed"`
	AnalysesFailed       int64                 `json:"analyses_failed"`
	TotalExecutionTime   time.Duration         `json:"total_execution_time_ns"`
	AverageExecutionTime time.Duration         `json:"average_execution_time_ns"`
	RecentAverageTime    time.Duration         `json:"recent_average_time_ns"`
	CompletedByBand      map[string]int64      `json:"completed_by_band"`
	FailedByKind         map[FailureKind]int64 `json:"failed_by_kind"`
	SuccessRate          float64               `json:"success_rate"`
	LastUpdated          time.Time             `json:"last_updated"`
}

// AnalysisMetrics tracks counters for analysis requests. It never records texts or scores.
type AnalysisMetrics struct {
	mu                   sync.RWMutex
	analysesStarted      int64
	analysesCompleted    int64
	analysesFailed       int64
	totalExecutionTime   time.Duration
	averageExecutionTime time.Duration
	completedByBand      map[string]int64
	failedByKind         map[FailureKind]int64
	recentDurations      []time.Duration
	lastUpdated          time.Time
}

// NewAnalysisMetrics creates a new metrics collector
func NewAnalysisMetrics() *AnalysisMetrics {
	return &AnalysisMetrics{
		completedByBand: make(map[string]int64),
		failedByKind:    make(map[FailureKind]int64),
		lastUpdated:     time.Now(),
	}
}

// RecordStarted increments the started counter
func (m *AnalysisMetrics) RecordStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.analysesStarted++
	m.lastUpdated = time.Now()
}

// RecordCompleted records a scored analysis
func (m *AnalysisMetrics) RecordCompleted(band string, executionTime time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.analysesCompleted++
	m.completedByBand[band]++
	m.totalExecutionTime += executionTime
	m.averageExecutionTime = m.totalExecutionTime / time.Duration(m.analysesCompleted)

	// Keep only the latest execution times to prevent memory growth
	m.recentDurations = append(m.recentDurations, executionTime)
	if len(m.recentDurations) > maxDurationsKept {
		m.recentDurations = m.recentDurations[1:]
	}

	m.lastUpdated = time.Now()
}

// RecordFailed records an analysis that ended with an error
func (m *AnalysisMetrics) RecordFailed(kind FailureKind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.analysesFailed++
	m.failedByKind[kind]++
	m.lastUpdated = time.Now()
}

// GetMetrics returns a copy of current metrics without mutex (safe for copying)
func (m *AnalysisMetrics) GetMetrics() AnalysisMetricsData {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Create deep copy of maps
	completedByBand := make(map[string]int64, len(m.completedByBand))
	for k, v := range m.completedByBand {
		completedByBand[k] = v
	}

	failedByKind := make(map[FailureKind]int64, len(m.failedByKind))
	for k, v := range m.failedByKind {
		failedByKind[k] = v
	}

	return AnalysisMetricsData{
		AnalysesStarted:      m.analysesStarted,
		AnalysesCompleted:    m.analysesCompleted,
		AnalysesFailed:       m.analysesFailed,
		TotalExecutionTime:   m.totalExecutionTime,
		AverageExecutionTime: m.averageExecutionTime,
		RecentAverageTime:    m.recentAverageLocked(),
		CompletedByBand:      completedByBand,
		FailedByKind:         failedByKind,
		SuccessRate:          m.successRateLocked(),
		LastUpdated:          m.lastUpdated,
	}
}

// GetSuccessRate returns the success rate (0.0 to 1.0)
func (m *AnalysisMetrics) GetSuccessRate() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.successRateLocked()
}

func (m *AnalysisMetrics) successRateLocked() float64 {
	total := m.analysesCompleted + m.analysesFailed
	if total == 0 {
		return 1.0 // No analyses yet, assume 100% success
	}
	return float64(m.analysesCompleted) / float64(total)
}

func (m *AnalysisMetrics) recentAverageLocked() time.Duration {
	if len(m.recentDurations) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range m.recentDurations {
		total += d
	}
	return total / time.Duration(len(m.recentDurations))
}
