package plugin

import "context"

// BridgedCall is the shape a host runtime's asynchronous operation takes
// when surfaced to this SDK: it is handed a context for cancellation and a
// completion function to call exactly once with its result.
type BridgedCall func(ctx context.Context, complete func(result []byte, err error))

// RunBridged blocks the calling goroutine until a host-runtime bridged
// operation completes or ctx is cancelled, adapting an async host
// callback into the synchronous Evaluator/CoinSelector/Provider method
// shapes this package defines. Cancellation is surfaced as ctx.Err(),
// not a typed SDK error; the host is responsible for whatever
// partial-completion semantics it offers.
func RunBridged(ctx context.Context, call BridgedCall) ([]byte, error) {
	type outcome struct {
		result []byte
		err    error
	}
	done := make(chan outcome, 1)
	go call(ctx, func(result []byte, err error) {
		done <- outcome{result: result, err: err}
	})
	select {
	case o := <-done:
		return o.result, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
