package log

import (
	"testing"
	"time"
)

func TestAppendAndReadAll(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	if err := logger.Append(LogEvent{Event: EventPollCreated, PollID: "0xabc", FID: 42}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := logger.Append(LogEvent{Event: EventChannelSearchFailed, Query: "degen", Error: "timeout"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events: got %d, want 2", len(events))
	}
	if events[0].Event != EventPollCreated || events[0].PollID != "0xabc" {
		t.Errorf("first event: %+v", events[0])
	}
	if events[0].Time.IsZero() {
		t.Error("Append should stamp the event time")
	}
	if events[1].Error != "timeout" {
		t.Errorf("second event: %+v", events[1])
	}
}

func TestReadAllMissingFile(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events: got %d, want 0", len(events))
	}
}

func TestAppendPreservesExplicitTime(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if err := logger.Append(LogEvent{Time: stamp, Event: EventLogin, FID: 7}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if !events[0].Time.Equal(stamp) {
		t.Errorf("time: got %v, want %v", events[0].Time, stamp)
	}
}
