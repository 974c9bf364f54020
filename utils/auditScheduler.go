package utils

import (
	"log"
	"time"

	"coursereg/config"
	"coursereg/database"

	"github.com/robfig/cron/v3"
)

// logAudit logs audit events with timestamp
func logAudit(message string) {
	log.Printf("[ENROLLMENT-AUDIT %s] %s", time.Now().Format(time.RFC3339), message)
}

type driftRow struct {
	ModuleID uint
	Code     string
	Enrolled uint
	Actual   int64
}

// auditEnrollmentCounters compares each module's enrolled counter against the
// count of its enrollment rows. The register path keeps the two consistent by
// construction; the audit only reports, it never repairs.
func auditEnrollmentCounters() {
	db := database.Database.Db

	var drifts []driftRow
	err := db.Raw(`
		SELECT m.id AS module_id, m.code AS code, m.enrolled AS enrolled, COUNT(e.id) AS actual
		FROM modules m
		LEFT JOIN enrollments e ON e.module_id = m.id AND e.deleted_at IS NULL
		WHERE m.deleted_at IS NULL
		GROUP BY m.id, m.code, m.enrolled
		HAVING m.enrolled <> COUNT(e.id)
	`).Scan(&drifts).Error
	if err != nil {
		logAudit("Error checking enrollment counters: " + err.Error())
		return
	}

	if len(drifts) == 0 {
		logAudit("All enrollment counters consistent")
		return
	}

	for _, d := range drifts {
		log.Printf("[ENROLLMENT-AUDIT] DRIFT module=%d code=%s counter=%d rows=%d",
			d.ModuleID, d.Code, d.Enrolled, d.Actual)
	}
}

// InitializeAuditScheduler sets up the periodic counter audit
func InitializeAuditScheduler() *cron.Cron {
	logAudit("Initializing enrollment audit scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.AuditCronSpec, auditEnrollmentCounters); err != nil {
		log.Printf("[ENROLLMENT-AUDIT] Invalid cron spec %q: %v", config.AppConfig.AuditCronSpec, err)
		return c
	}

	c.Start()
	logAudit("Enrollment audit scheduler started - spec " + config.AppConfig.AuditCronSpec)
	return c
}
