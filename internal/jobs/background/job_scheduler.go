package background

import (
	"context"
	"log"
	"sync"
	"time"

	"homeport/internal/repositories"
	"homeport/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler manages periodic background work
type JobScheduler struct {
	scheduler  gocron.Scheduler
	listingSvc services.ListingService
	brokerRepo repositories.BrokerRepository
	jobs       map[string]gocron.Job
	mu         sync.RWMutex
}

func NewJobScheduler(listingSvc services.ListingService, brokerRepo repositories.BrokerRepository) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:  scheduler,
		listingSvc: listingSvc,
		brokerRepo: brokerRepo,
		jobs:       make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	refreshJob, err := js.scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(js.refreshListingCache, context.Background()),
		gocron.WithName("listing-cache-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create listing cache refresh job: %v", err)
		return
	}

	js.mu.Lock()
	js.jobs["listing-cache-refresh"] = refreshJob
	js.mu.Unlock()
}

// refreshListingCache re-warms the per-broker listing cache so broker queries
// rarely hit Postgres cold.
func (js *JobScheduler) refreshListingCache(ctx context.Context) {
	brokers, err := js.brokerRepo.List(ctx)
	if err != nil {
		log.Printf("Listing cache refresh: failed to list brokers: %v", err)
		return
	}

	for _, broker := range brokers {
		if err := js.listingSvc.RefreshBroker(ctx, broker.Name); err != nil {
			log.Printf("Listing cache refresh failed for broker %q: %v", broker.Name, err)
		}
	}

	log.Printf("Listing cache refreshed for %d brokers", len(brokers))
}
