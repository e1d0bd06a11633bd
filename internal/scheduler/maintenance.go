// Package scheduler runs periodic store maintenance off the request path.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Maintainer is the store-side maintenance hook.
type Maintainer interface {
	Optimize() error
}

// MaintenanceScheduler runs the store's maintenance pragmas on a cron
// schedule.
type MaintenanceScheduler struct {
	maintainer Maintainer
	schedule   string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

// NewMaintenanceScheduler creates a new scheduler instance.
func NewMaintenanceScheduler(maintainer Maintainer, schedule string) *MaintenanceScheduler {
	return &MaintenanceScheduler{
		maintainer: maintainer,
		schedule:   schedule,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *MaintenanceScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runMaintenance)
	if err != nil {
		return fmt.Errorf("invalid maintenance schedule %q: %w", s.schedule, err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true
	log.Printf("Store maintenance scheduled: %s", s.schedule)
	return nil
}

// Stop halts the scheduler, waiting for a running job to finish.
func (s *MaintenanceScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.isRunning = false
	log.Println("Store maintenance scheduler stopped")
}

func (s *MaintenanceScheduler) runMaintenance() {
	start := time.Now()
	if err := s.maintainer.Optimize(); err != nil {
		log.Printf("Store maintenance failed: %v", err)
		return
	}
	log.Printf("Store maintenance completed in %v", time.Since(start))
}
