package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// InterruptHandler handles graceful shutdown on interrupt signals
type InterruptHandler struct {
	cancel  context.CancelFunc
	sigChan chan os.Signal
}

// NewInterruptHandler creates a new interrupt handler
func NewInterruptHandler(cancel context.CancelFunc) *InterruptHandler {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	return &InterruptHandler{
		cancel:  cancel,
		sigChan: sigChan,
	}
}

// Start starts the interrupt handler in a goroutine
func (h *InterruptHandler) Start() {
	go h.handleSignals()
}

// handleSignals handles interrupt signals
func (h *InterruptHandler) handleSignals() {
	_, ok := <-h.sigChan
	if !ok {
		// Stop closed the channel, the command finished normally
		return
	}

	fmt.Println("\n\nInterrupted. No commit was created.")

	// Cancel the context to stop any in-flight prompt or git command
	h.cancel()

	// Give some time for graceful shutdown
	time.Sleep(100 * time.Millisecond)

	os.Exit(130) // Standard exit code for SIGINT
}

// Stop stops the signal handling
func (h *InterruptHandler) Stop() {
	signal.Stop(h.sigChan)
	close(h.sigChan)
}
