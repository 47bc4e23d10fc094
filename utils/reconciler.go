package utils

import (
	"fmt"
	"log"
	"time"

	"lms/models"
	"lms/services/catalog"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logReconciler logs reconciler events with timestamp
func logReconciler(message string) {
	log.Printf("[RECONCILER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ReconcileCourseAggregates sweeps courses touched since the start of the
// previous day and rebuilds their derived fields from the source-of-truth
// tables. Aggregate writes run transactionally during requests, so this is a
// safety net against operator edits and old data, not a required repair step.
func ReconcileCourseAggregates(db *gorm.DB) {
	since := now.BeginningOfDay().AddDate(0, 0, -1)

	var courseIDs []uint
	if err := db.Model(&models.Course{}).
		Where("is_deleted = ? AND updated_at >= ?", false, since).
		Pluck("id", &courseIDs).Error; err != nil {
		logReconciler("Error fetching courses: " + err.Error())
		return
	}

	repaired := 0
	for _, id := range courseIDs {
		drift, err := catalog.RecomputeCourseAggregates(db, id)
		if err != nil {
			logReconciler("Error reconciling course: " + err.Error())
			continue
		}
		if drift {
			repaired++
		}
	}

	logReconciler(fmt.Sprintf("Swept %d courses, repaired %d", len(courseIDs), repaired))
}

// StartReconciler schedules the nightly aggregate sweep
func StartReconciler(db *gorm.DB, spec string) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(spec, func() { ReconcileCourseAggregates(db) }); err != nil {
		log.Fatalf("Failed to schedule reconciler: %v", err)
	}

	c.Start()
	logReconciler("Scheduled with spec " + spec)
	return c
}
