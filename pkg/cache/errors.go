package cache

import "fmt"

// CacheError wraps a failed listing-cache operation. Retryable separates
// transport failures, where the same call may succeed on the next attempt,
// from marshalling failures that never will. Callers treat the listing cache
// as best-effort either way; the flag only informs logging and metrics.
type CacheError struct {
	Operation string
	Err       error
	Retryable bool
}

func NewCacheError(operation string, err error, retryable bool) *CacheError {
	return &CacheError{
		Operation: operation,
		Err:       err,
		Retryable: retryable,
	}
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("listing cache %s failed: %v", e.Operation, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}
