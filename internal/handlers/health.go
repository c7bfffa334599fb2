// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/chromabags/chromabags/internal/db"
	"github.com/gin-gonic/gin"
)

// BackupMonitor reports the outcome of the latest scheduled backup
type BackupMonitor interface {
	LastRun() (time.Time, error)
}

var (
	monitorMu     sync.RWMutex
	backupMonitor BackupMonitor
)

// SetBackupMonitor makes /health report on scheduled backups. nil turns it off.
func SetBackupMonitor(m BackupMonitor) {
	monitorMu.Lock()
	defer monitorMu.Unlock()
	backupMonitor = m
}

// HealthHandler reports whether the catalog database answers, and how the
// last scheduled backup went
func HealthHandler(c *gin.Context) {
	status := "ok"
	if database := db.GetDB(); database == nil {
		status = "no database"
	} else if sqlDB, err := database.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status = "database unreachable"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	resp := gin.H{"status": status}

	monitorMu.RLock()
	m := backupMonitor
	monitorMu.RUnlock()
	if m != nil {
		backup := gin.H{"last_run": nil}
		if at, err := m.LastRun(); !at.IsZero() {
			backup["last_run"] = at.UTC().Format(time.RFC3339)
			if err != nil {
				backup["error"] = err.Error()
			}
		}
		resp["backup"] = backup
	}

	c.JSON(code, resp)
}
