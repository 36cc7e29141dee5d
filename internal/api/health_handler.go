package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ignite/campaign-dashboard/internal/datanorm"
	"github.com/ignite/campaign-dashboard/internal/pkg/httputil"
)

// HealthStatus represents the health of the dashboard server.
type HealthStatus struct {
	Status   string         `json:"status"`
	Version  string         `json:"version"`
	Uptime   string         `json:"uptime"`
	Snapshot *SnapshotCheck `json:"snapshot,omitempty"`
}

// SnapshotCheck describes the currently committed snapshot.
type SnapshotCheck struct {
	ID        string    `json:"id"`
	LoadedAt  time.Time `json:"loaded_at"`
	Campaigns int       `json:"campaigns"`
}

// HealthChecker reports process uptime and the committed snapshot.
type HealthChecker struct {
	holder    *datanorm.Holder
	startTime time.Time
}

// NewHealthChecker creates a new HealthChecker.
func NewHealthChecker(holder *datanorm.Holder) *HealthChecker {
	return &HealthChecker{
		holder:    holder,
		startTime: time.Now(),
	}
}

const healthVersion = "1.0.0"

// HandleHealth always returns 200 while the process is serving. A server
// with nothing loaded yet reports "waiting".
//
//	GET /health
func (hc *HealthChecker) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:  "waiting",
		Version: healthVersion,
		Uptime:  formatUptime(time.Since(hc.startTime)),
	}

	if snap := hc.holder.Current(); snap != nil {
		status.Status = "healthy"
		status.Snapshot = &SnapshotCheck{
			ID:        snap.ID.String(),
			LoadedAt:  snap.LoadedAt,
			Campaigns: len(snap.Campaigns),
		}
	}

	httputil.OK(w, status)
}

func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
