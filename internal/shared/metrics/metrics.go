package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

// Pipeline operations with their own counters and latency histograms.
const (
	OpTailor  = "tailor"
	OpExtract = "extract"
	OpExport  = "export"
)

var ops = []string{OpTailor, OpExtract, OpExport}

type opMetrics struct {
	started   atomic.Uint64
	succeeded atomic.Uint64
	failed    atomic.Uint64
	duration  *histogram
}

var registry = func() map[string]*opMetrics {
	m := make(map[string]*opMetrics, len(ops))
	for _, op := range ops {
		m[op] = &opMetrics{duration: newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})}
	}
	return m
}()

// Start counts an operation attempt and returns a func that records its
// outcome and duration. Unknown operations are ignored.
func Start(op string) func(err error) {
	m, ok := registry[op]
	if !ok {
		return func(error) {}
	}
	m.started.Add(1)
	began := time.Now()
	return func(err error) {
		if err != nil {
			m.failed.Add(1)
		} else {
			m.succeeded.Add(1)
		}
		ms := float64(time.Since(began).Microseconds()) / 1000.0
		if ms < 0 {
			ms = 0
		}
		m.duration.Observe(ms)
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	for _, op := range ops {
		m := registry[op]
		writeCounter(&buf, op+"_started_total", "Total "+op+" operations started", m.started.Load())
		writeCounter(&buf, op+"_succeeded_total", "Total "+op+" operations succeeded", m.succeeded.Load())
		writeCounter(&buf, op+"_failed_total", "Total "+op+" operations failed", m.failed.Load())
		writeHistogram(&buf, op+"_duration_ms", "Duration of "+op+" operations in milliseconds", m.duration.Snapshot())
	}
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
