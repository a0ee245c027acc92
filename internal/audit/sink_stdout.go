package audit

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// StdoutSink writes audit events to stdout as JSONL.
type StdoutSink struct {
	writer *bufio.Writer
	mu     sync.Mutex
}

func NewStdoutSink() *StdoutSink {
	return &StdoutSink{writer: bufio.NewWriter(os.Stdout)}
}

func (s *StdoutSink) Name() string { return "stdout_jsonl" }

func (s *StdoutSink) Deliver(_ context.Context, ev *Event) error {
	if ev == nil {
		return nil
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.writer.Write(data); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	if err := s.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return s.writer.Flush()
}

func (s *StdoutSink) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writer.Flush()
}
