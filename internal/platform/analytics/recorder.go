package analytics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Observation describes one completed assessment.
type Observation struct {
	Urgency   string
	Source    string
	RedFlags  []string
	Fallback  bool
	Escalated bool
	Duration  time.Duration
}

// RedFlagCount is one entry of the red-flag leaderboard.
type RedFlagCount struct {
	RuleID string `json:"rule_id"`
	Count  int64  `json:"count"`
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	TotalAssessments int64            `json:"total_assessments"`
	ByUrgency        map[string]int64 `json:"by_urgency"`
	BySource         map[string]int64 `json:"by_source"`
	RedFlags         []RedFlagCount   `json:"red_flags"`
	Fallbacks        int64            `json:"fallbacks"`
	Escalations      int64            `json:"escalations"`
	AvgLatencyMs     float64          `json:"avg_latency_ms"`
	MaxLatencyMs     float64          `json:"max_latency_ms"`
	Since            time.Time        `json:"since"`
}

// Recorder aggregates assessment outcomes in memory. Safe for concurrent use.
type Recorder struct {
	mu        sync.RWMutex
	byUrgency map[string]int64
	bySource  map[string]int64
	redFlags  map[string]int64
	maxDur    time.Duration
	since     time.Time

	total       int64
	fallbacks   int64
	escalations int64
	totalDur    int64 // nanoseconds
}

func NewRecorder() *Recorder {
	return &Recorder{
		byUrgency: make(map[string]int64),
		bySource:  make(map[string]int64),
		redFlags:  make(map[string]int64),
		since:     time.Now().UTC(),
	}
}

// Record updates all counters for one observation.
func (r *Recorder) Record(o Observation) {
	atomic.AddInt64(&r.total, 1)
	atomic.AddInt64(&r.totalDur, int64(o.Duration))
	if o.Fallback {
		atomic.AddInt64(&r.fallbacks, 1)
	}
	if o.Escalated {
		atomic.AddInt64(&r.escalations, 1)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUrgency[o.Urgency]++
	r.bySource[o.Source]++
	for _, id := range o.RedFlags {
		r.redFlags[id]++
	}
	if o.Duration > r.maxDur {
		r.maxDur = o.Duration
	}
}

func (r *Recorder) Snapshot() Snapshot {
	total := atomic.LoadInt64(&r.total)
	s := Snapshot{
		TotalAssessments: total,
		Fallbacks:        atomic.LoadInt64(&r.fallbacks),
		Escalations:      atomic.LoadInt64(&r.escalations),
		ByUrgency:        make(map[string]int64),
		BySource:         make(map[string]int64),
		RedFlags:         []RedFlagCount{},
		Since:            r.since,
	}
	if total > 0 {
		s.AvgLatencyMs = float64(atomic.LoadInt64(&r.totalDur)) / float64(total) / float64(time.Millisecond)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for k, v := range r.byUrgency {
		s.ByUrgency[k] = v
	}
	for k, v := range r.bySource {
		s.BySource[k] = v
	}
	for id, n := range r.redFlags {
		s.RedFlags = append(s.RedFlags, RedFlagCount{RuleID: id, Count: n})
	}
	sort.Slice(s.RedFlags, func(i, j int) bool {
		if s.RedFlags[i].Count != s.RedFlags[j].Count {
			return s.RedFlags[i].Count > s.RedFlags[j].Count
		}
		return s.RedFlags[i].RuleID < s.RedFlags[j].RuleID
	})
	s.MaxLatencyMs = float64(r.maxDur) / float64(time.Millisecond)
	return s
}
