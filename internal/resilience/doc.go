// Package resilience groups the fault tolerance patterns used around the
// text-generation backends.
//
// A circuit breaker guards every outbound generation call. Only transport
// failures count against it: a backend that answers with text the service
// cannot use is healthy from the breaker's point of view. There is no retry
// layer; a failed call is answered from the deterministic fallbacks.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.GeminiAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callBackend(ctx)
//	})
package resilience
