// Package monitoring turns a running sweep into a small HTTP server so that
// long simulations can be watched without disturbing their output files.
package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
)

// A Monitor counts completed protocol runs and serves progress over HTTP.
// The counters are safe to bump from concurrent workers.
type Monitor struct {
	router *mux.Router

	total     int64
	completed int64
	start     time.Time
}

// NewMonitor creates a monitor with its routes registered but no server
// started.
func NewMonitor() *Monitor {
	m := &Monitor{
		router: mux.NewRouter(),
		start:  time.Now(),
	}

	m.router.HandleFunc("/api/progress", m.progressHandler)

	return m
}

// RegisterSweep tells the monitor how many runs to expect and restarts the
// elapsed-time baseline.
func (m *Monitor) RegisterSweep(totalRuns int) {
	atomic.StoreInt64(&m.total, int64(totalRuns))
	atomic.StoreInt64(&m.completed, 0)
	m.start = time.Now()
}

// CompleteRun records one finished protocol run.
func (m *Monitor) CompleteRun() {
	atomic.AddInt64(&m.completed, 1)
}

type progressResponse struct {
	CompletedRuns  int64   `json:"completed_runs"`
	TotalRuns      int64   `json:"total_runs"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	RunsPerSecond  float64 `json:"runs_per_second"`
	MemoryRSSBytes uint64  `json:"memory_rss_bytes"`
}

func (m *Monitor) progressHandler(w http.ResponseWriter, r *http.Request) {
	elapsed := time.Since(m.start).Seconds()
	completed := atomic.LoadInt64(&m.completed)

	resp := progressResponse{
		CompletedRuns:  completed,
		TotalRuns:      atomic.LoadInt64(&m.total),
		ElapsedSeconds: elapsed,
	}

	if elapsed > 0 {
		resp.RunsPerSecond = float64(completed) / elapsed
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err == nil {
		if memInfo, err := proc.MemoryInfo(); err == nil {
			resp.MemoryRSSBytes = memInfo.RSS
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Router exposes the monitor's routes for embedding in another server.
func (m *Monitor) Router() http.Handler {
	return m.router
}

// StartServer listens on the given port (0 picks a free one) and serves the
// monitor in the background. When openBrowser is set, the default browser is
// pointed at the progress endpoint.
func (m *Monitor) StartServer(port int, openBrowser bool) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	actualPort := listener.Addr().(*net.TCPAddr).Port
	url := fmt.Sprintf("http://localhost:%d/api/progress", actualPort)
	log.Printf("Monitoring server started at %s", url)

	if openBrowser {
		if err := browser.OpenURL(url); err != nil {
			log.Printf("cannot open browser: %s", err)
		}
	}

	go func() {
		if err := http.Serve(listener, m.router); err != nil {
			log.Printf("monitoring server stopped: %s", err)
		}
	}()

	return nil
}
