package admin

import (
	"fmt"
	"net/http"
	"time"

	"Fitforge_V1.0/internal/database"
	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

var StartTime = time.Now()

// GetSystemStatusHandler collects and returns system-level metrics plus
// database pool health for the operations dashboard.
func GetSystemStatusHandler(db database.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		// 1. Memory Stats
		v, _ := mem.VirtualMemory()

		// 2. CPU Usage (Calculated over 1 second)
		cpuPercent, _ := cpu.Percent(time.Second, false)

		// 3. Disk Stats (Root partition)
		d, _ := disk.Usage("/")

		// 4. Host/Runtime Info
		hInfo, _ := host.Info()
		uptime := time.Since(StartTime).String()

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "online",
			"runtime": map[string]interface{}{
				"uptime":     uptime,
				"start_time": StartTime.Format(time.RFC3339),
				"os":         hInfo.OS,
				"platform":   hInfo.Platform,
				"arch":       hInfo.KernelArch,
				"hostname":   hInfo.Hostname,
			},
			"cpu": map[string]interface{}{
				"usage_percent": fmt.Sprintf("%.2f%%", cpuPercent[0]),
				"cores":         hInfo.Procs,
			},
			"memory": map[string]interface{}{
				"total_gb":     fmt.Sprintf("%.2f GB", float64(v.Total)/1024/1024/1024),
				"used_gb":      fmt.Sprintf("%.2f GB", float64(v.Used)/1024/1024/1024),
				"used_percent": fmt.Sprintf("%.2f%%", v.UsedPercent),
				"free_gb":      fmt.Sprintf("%.2f GB", float64(v.Free)/1024/1024/1024),
			},
			"disk": map[string]interface{}{
				"total_gb":     fmt.Sprintf("%.2f GB", float64(d.Total)/1024/1024/1024),
				"used_gb":      fmt.Sprintf("%.2f GB", float64(d.Used)/1024/1024/1024),
				"used_percent": fmt.Sprintf("%.2f%%", d.UsedPercent),
			},
			"database": db.Health(),
		})
	}
}
