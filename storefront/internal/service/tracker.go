package service

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"delivery-storefront/storefront/internal/domain"
)

// Tracker simulates courier motion: while the active delivery is out for
// delivery it jitters the current location a little every tick. It is the
// only recurring background activity and must be stopped with its owner.
type Tracker struct {
	ledger   DeliveryLedger
	sync     DeliverySync
	mirror   LocationMirror
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewTracker(ledger DeliveryLedger, sync DeliverySync, mirror LocationMirror, interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Tracker{ledger: ledger, sync: sync, mirror: mirror, interval: interval}
}

// Start launches the tick loop. Starting twice restarts it.
func (t *Tracker) Start(ctx context.Context) {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	ctx, t.cancel = context.WithCancel(ctx)
	t.mu.Unlock()

	go t.run(ctx)
}

// Stop is idempotent.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *Tracker) run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Tick(ctx)
		}
	}
}

// Tick advances the simulation one step.
func (t *Tracker) Tick(ctx context.Context) {
	delivery, ok := t.ledger.ActiveDelivery()
	if !ok || delivery.Status != domain.DeliveryDelivering {
		return
	}

	location := domain.LatLng{
		Lat: delivery.CurrentLocation.Lat + (rand.Float64()-0.5)*0.001,
		Lng: delivery.CurrentLocation.Lng + (rand.Float64()-0.5)*0.001,
	}
	t.sync.UpdateLocation(delivery.ID, location)

	if t.mirror != nil {
		if err := t.mirror.MirrorLocation(ctx, delivery.ID, location); err != nil {
			log.Printf("Warning: failed to mirror delivery location: %v", err)
		}
	}
}
