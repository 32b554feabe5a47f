package analytics

import (
	"sync"
	"testing"
	"time"
)

func TestRecorder_Snapshot(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.Record(Observation{Urgency: "emergency", Source: "engine", RedFlags: []string{"stroke_signs", "emergency_phrase"}, Fallback: true, Duration: 2 * time.Millisecond})
	r.Record(Observation{Urgency: "emergency", Source: "ai:deepseek", RedFlags: []string{"stroke_signs"}, Escalated: true, Duration: 4 * time.Millisecond})
	r.Record(Observation{Urgency: "self-care", Source: "engine", Duration: 6 * time.Millisecond})

	s := r.Snapshot()
	if s.TotalAssessments != 3 {
		t.Errorf("total = %d, want 3", s.TotalAssessments)
	}
	if s.ByUrgency["emergency"] != 2 || s.ByUrgency["self-care"] != 1 {
		t.Errorf("unexpected urgency counts %v", s.ByUrgency)
	}
	if s.BySource["engine"] != 2 || s.BySource["ai:deepseek"] != 1 {
		t.Errorf("unexpected source counts %v", s.BySource)
	}
	if s.Fallbacks != 1 || s.Escalations != 1 {
		t.Errorf("fallbacks=%d escalations=%d", s.Fallbacks, s.Escalations)
	}
	if len(s.RedFlags) != 2 || s.RedFlags[0].RuleID != "stroke_signs" || s.RedFlags[0].Count != 2 {
		t.Errorf("unexpected red flag leaderboard %+v", s.RedFlags)
	}
	if s.AvgLatencyMs != 4 || s.MaxLatencyMs != 6 {
		t.Errorf("latency avg=%v max=%v", s.AvgLatencyMs, s.MaxLatencyMs)
	}
}

func TestRecorder_SnapshotIsACopy(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.Record(Observation{Urgency: "self-care", Source: "engine"})
	s := r.Snapshot()
	s.ByUrgency["self-care"] = 99
	if r.Snapshot().ByUrgency["self-care"] != 1 {
		t.Error("snapshot must not alias recorder state")
	}
}

func TestRecorder_Concurrent(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Record(Observation{Urgency: "schedule-visit", Source: "engine", RedFlags: []string{"syncope"}})
		}()
	}
	wg.Wait()
	s := r.Snapshot()
	if s.TotalAssessments != 50 || s.ByUrgency["schedule-visit"] != 50 || s.RedFlags[0].Count != 50 {
		t.Errorf("unexpected counters after concurrent writes: %+v", s)
	}
}
