package jobs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"automanager-api/models"
	"gorm.io/gorm"
)

// ImageCleanupJob periodically removes uploaded files that no longer have a
// vehicle image record, e.g. after a vehicle was hard-deleted.
type ImageCleanupJob struct {
	db        *gorm.DB
	uploadDir string
	ticker    *time.Ticker
	done      chan bool
}

// NewImageCleanupJob creates a new orphaned image cleanup job
func NewImageCleanupJob(db *gorm.DB, uploadDir string, interval time.Duration) *ImageCleanupJob {
	return &ImageCleanupJob{
		db:        db,
		uploadDir: uploadDir,
		ticker:    time.NewTicker(interval),
		done:      make(chan bool),
	}
}

// Start begins the cleanup job
func (j *ImageCleanupJob) Start() {
	fmt.Println("Image cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Image cleanup job stopped")
				return
			}
		}
	}()
}

// Stop halts the cleanup job
func (j *ImageCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *ImageCleanupJob) cleanup() {
	entries, err := os.ReadDir(j.uploadDir)
	if err != nil {
		fmt.Printf("Warning: Could not read upload dir: %v\n", err)
		return
	}

	var referenced []string
	if err := j.db.Model(&models.VehicleImage{}).Pluck("file_path", &referenced).Error; err != nil {
		fmt.Printf("Warning: Could not list image records: %v\n", err)
		return
	}

	known := make(map[string]bool, len(referenced))
	for _, filePath := range referenced {
		known[filepath.Base(filePath)] = true
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || known[entry.Name()] {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		// Grace period so files mid-upload are not swept
		if time.Since(info.ModTime()) < time.Hour {
			continue
		}

		if err := os.Remove(filepath.Join(j.uploadDir, entry.Name())); err == nil {
			removed++
		}
	}

	if removed > 0 {
		fmt.Printf("Image cleanup removed %d orphaned file(s)\n", removed)
	}
}
