package util

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/gosuri/uilive"
)

// TerminalPrinter multiplexes live progress lines onto the terminal, one line
// per registered output, refreshed at a fixed frequency.
type TerminalPrinter struct {
	parallelOutputs []*ParallelOutput
	frequency       time.Duration
	doneCh          chan struct{}
	stoppedCh       chan struct{}

	writer *uilive.Writer
}

func NewTerminalPrinter(frequency time.Duration) *TerminalPrinter {
	return &TerminalPrinter{
		parallelOutputs: make([]*ParallelOutput, 0),
		frequency:       frequency,
		doneCh:          make(chan struct{}),
		stoppedCh:       make(chan struct{}),

		writer: uilive.New(),
	}
}

// NewOutput adds a line to the display. All outputs must be registered before
// Start.
func (t *TerminalPrinter) NewOutput() *ParallelOutput {
	out := &ParallelOutput{
		mu:   new(sync.Mutex),
		line: t.writer.Newline(),
	}
	t.parallelOutputs = append(t.parallelOutputs, out)
	return out
}

// Start begins refreshing the display until Stop is called or the context
// ends. The printer flushes manually, the uilive auto-flush listener stays
// off.
func (t *TerminalPrinter) Start(ctx context.Context) {
	go func() {
		defer close(t.stoppedCh)
		for {
			select {
			case <-t.doneCh:
				t.print()
				return
			case <-ctx.Done():
				return
			case <-time.After(t.frequency):
				t.print()
			}
		}
	}()
}

// Stop flushes the final state of every line and releases the terminal. It
// returns once the display goroutine is done, so callers can print normally
// afterwards.
func (t *TerminalPrinter) Stop() {
	close(t.doneCh)
	<-t.stoppedCh
}

func (t *TerminalPrinter) print() {
	for _, output := range t.parallelOutputs {
		fmt.Fprint(output.line, output.Get()+"\n")
	}
	t.writer.Flush()
}

// ParallelOutput holds the latest progress text of one worker. It implements
// io.Writer, each Write replaces the whole line.
type ParallelOutput struct {
	mu        *sync.Mutex
	line      io.Writer
	printable string
}

func (p *ParallelOutput) Write(bs []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printable = strings.TrimRight(string(bs), "\n")
	return len(bs), nil
}

// Get the current line (blocking).
func (p *ParallelOutput) Get() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.printable
}
