package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
	LogMsgPoolStopping    = "Worker pool stopping"
)

// ============================================================================
// Log Messages - Cache Warm Job
// ============================================================================

// Log messages for cache warm-up
const (
	LogMsgWarmStarting  = "Cache warm-up starting"
	LogMsgWarmCompleted = "Cache warm-up completed"
)

// ============================================================================
// Defaults
// ============================================================================

const (
	DefaultWorkerCount = 1
	DefaultQueueSize   = 4
	DefaultJobTimeout  = 2 * time.Minute
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
