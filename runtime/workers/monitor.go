package workers

import (
	"context"
	"log/slog"
	"os"
	goruntime "runtime"
	"time"

	"github.com/shirou/gopsutil/process"

	"chat-core/contract"
	"chat-core/observability"
)

// MonitorWorker periodically logs process health (CPU, RSS, goroutines)
// together with the live session/group gauges and delivery counters.
type MonitorWorker struct {
	log      *slog.Logger
	interval time.Duration
	clients  contract.IClientRegistry
	groups   contract.IGroupRegistry
	stats    *observability.Stats
}

func NewMonitorWorker(
	log *slog.Logger,
	interval time.Duration,
	clients contract.IClientRegistry,
	groups contract.IGroupRegistry,
	stats *observability.Stats,
) *MonitorWorker {
	return &MonitorWorker{log: log, interval: interval, clients: clients, groups: groups, stats: stats}
}

func (w *MonitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.report(proc)
		}
	}
}

func (w *MonitorWorker) report(proc *process.Process) {
	cpu, err := proc.CPUPercent()
	if err != nil {
		w.log.Debug("Failed to read CPU usage", "err", err)
	}
	var rssMb uint64
	if mem, err := proc.MemoryInfo(); err == nil {
		rssMb = mem.RSS / 1024 / 1024
	} else {
		w.log.Debug("Failed to read memory usage", "err", err)
	}

	snap := w.stats.Snapshot()
	w.log.Info("Server health",
		"cpu_percent", cpu,
		"rss_mb", rssMb,
		"goroutines", goruntime.NumGoroutine(),
		"sessions", w.clients.Count(),
		"groups", w.groups.Count(),
		"delivered", snap.Delivered,
		"dropped", snap.Dropped,
		"auth_failures", snap.AuthFailures,
	)
}
