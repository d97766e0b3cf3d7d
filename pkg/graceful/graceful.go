package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Stop blocks until SIGINT or SIGTERM arrives, then calls fn with a
// context that expires after wait.
func Stop(wait time.Duration, fn func(ctx context.Context) error) error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)
	return StopOn(done, wait, fn)
}

// StopOn is Stop with the signal channel supplied by the caller.
func StopOn(done <-chan os.Signal, wait time.Duration, fn func(ctx context.Context) error) error {
	<-done
	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	return fn(ctx)
}
