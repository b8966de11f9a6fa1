package vatlib

import (
	"context"
	"runtime"
	"sync"
)

// ValidateBatch validates many invoices concurrently and returns results in
// input order. Invoices are independent, so the batch shards across workers
// with no coordination beyond the shared read-only rule table. A cancelled
// context stops the remaining work; already-produced results keep their
// slots and the rest are zero values.
func (v *Validator) ValidateBatch(ctx context.Context, invoices []Invoice, workers int) []ValidationResult {
	results := make([]ValidationResult, len(invoices))
	if len(invoices) == 0 {
		return results
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(invoices) {
		workers = len(invoices)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = v.engine.Validate(invoices[i])
			}
		}()
	}

	for i := range invoices {
		select {
		case indexes <- i:
		case <-ctx.Done():
			close(indexes)
			wg.Wait()
			return results
		}
	}
	close(indexes)
	wg.Wait()
	return results
}
