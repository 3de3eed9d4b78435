package service

import "time"

// OperationMetrics records use case outcomes.
type OperationMetrics interface {
	// ObserveOperation records one call of op, classified by the error it returned.
	ObserveOperation(op string, err error, elapsed time.Duration)
	// ObserveAttachments counts files stored or removed.
	ObserveAttachments(action string, count int)
	// ObserveCleanupFailure counts a file that could not be removed.
	ObserveCleanupFailure()
}
