package worker

// Log messages
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
	LogMsgPoolStopped     = "Worker pool stopped"
)

// Log fields
const (
	LogFieldError   = "error"
	LogFieldJob     = "job"
	LogFieldWorkers = "workers"
)
