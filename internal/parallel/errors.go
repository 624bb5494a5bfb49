// Package parallel provides small helpers for coordinating concurrent
// evaluation work.
package parallel

import "sync"

// ErrorCollector records the first error reported by a group of
// goroutines. It is safe for concurrent use.
//
// Usage:
//
//	var ec parallel.ErrorCollector
//	var wg sync.WaitGroup
//	wg.Add(2)
//	go func() {
//	    defer wg.Done()
//	    ec.SetError(evaluateChunk(a))
//	}()
//	go func() {
//	    defer wg.Done()
//	    ec.SetError(evaluateChunk(b))
//	}()
//	wg.Wait()
//	if err := ec.Err(); err != nil {
//	    return err
//	}
type ErrorCollector struct {
	once sync.Once
	err  error
}

// SetError records an error if none has been recorded yet.
// Nil errors are ignored. This method is thread-safe.
//
// Parameters:
//   - err: The error to record (nil is ignored).
func (c *ErrorCollector) SetError(err error) {
	if err != nil {
		c.once.Do(func() {
			c.err = err
		})
	}
}

// Err returns the first recorded error, or nil if no error was recorded.
// Call it after the goroutines reporting into the collector have finished.
//
// Returns:
//   - error: The first recorded error or nil.
func (c *ErrorCollector) Err() error {
	return c.err
}

// Reset clears the collector for reuse.
// WARNING: not thread-safe; call only once no goroutine is using the
// collector.
func (c *ErrorCollector) Reset() {
	c.once = sync.Once{}
	c.err = nil
}
