package circuitbreaker

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errUnreachable = errors.New("unreachable")
	errMalformed   = errors.New("malformed envelope")
)

func testConfig() Config {
	return Config{
		Name:             "test-circuit",
		MaxRequests:      1,
		Interval:         10 * time.Second,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 0.6,
		MinRequests:      3,
	}
}

func fail(err error) func() (interface{}, error) {
	return func() (interface{}, error) { return nil, err }
}

func TestNew(t *testing.T) {
	cb := New(testConfig())

	require.NotNil(t, cb)
	assert.Equal(t, "test-circuit", cb.Name())
	assert.Equal(t, gobreaker.StateClosed, cb.State())
	assert.False(t, cb.IsOpen())
}

func TestPresets(t *testing.T) {
	assert.Equal(t, "gemini-api", GeminiAPIConfig().Name)
	assert.Equal(t, "claude-api", ClaudeAPIConfig().Name)
	assert.Equal(t, "openai-api", OpenAIAPIConfig().Name)
	assert.Equal(t, uint32(5), GeminiAPIConfig().MinRequests)
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(testConfig())

	result, err := cb.Execute(func() (interface{}, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestCircuitBreaker_TripsOpen(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 3; i++ {
		_, err := cb.Execute(fail(errUnreachable))
		assert.ErrorIs(t, err, errUnreachable)
	}

	assert.True(t, cb.IsOpen())

	called := false
	_, err := cb.Execute(func() (interface{}, error) {
		called = true
		return nil, nil
	})
	assert.False(t, called, "function must not run while open")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.True(t, Rejected(err))
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := New(testConfig())
	for i := 0; i < 3; i++ {
		_, _ = cb.Execute(fail(errUnreachable))
	}
	require.True(t, cb.IsOpen())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, gobreaker.StateHalfOpen, cb.State())

	_, err := cb.Execute(func() (interface{}, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestCircuitBreaker_IsFailure(t *testing.T) {
	cfg := testConfig()
	cfg.IsFailure = func(err error) bool {
		return errors.Is(err, errUnreachable)
	}
	cb := New(cfg)

	// Errors that are not failures pass through without tripping.
	for i := 0; i < 5; i++ {
		_, err := cb.Execute(fail(fmt.Errorf("decode: %w", errMalformed)))
		assert.ErrorIs(t, err, errMalformed)
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())

	for i := 0; i < 10; i++ {
		_, _ = cb.Execute(fail(fmt.Errorf("dial: %w", errUnreachable)))
	}
	assert.True(t, cb.IsOpen())
}

func TestRejected(t *testing.T) {
	assert.True(t, Rejected(gobreaker.ErrOpenState))
	assert.True(t, Rejected(gobreaker.ErrTooManyRequests))
	assert.False(t, Rejected(errUnreachable))
	assert.False(t, Rejected(nil))
}
