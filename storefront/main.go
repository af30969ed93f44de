package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"delivery-storefront/config"
	httpapi "delivery-storefront/storefront/internal/api/http"
	"delivery-storefront/storefront/internal/ingress"
	"delivery-storefront/storefront/internal/service"
	"delivery-storefront/storefront/internal/storage"
	"delivery-storefront/storefront/internal/store"
)

func main() {
	config.Load()

	catalog := store.NewCatalog()
	cart := store.NewCart()
	ledger := store.NewLedger()
	feed := store.NewFeed()

	var source storage.Source = storage.SeedSource{}
	db, err := config.InitPostgres()
	if err != nil {
		log.Printf("Warning: no catalog database, using seed data: %v", err)
	} else {
		defer db.Close()
		source = storage.NewCatalogRepo(db)
	}

	restaurants, err := source.ListRestaurants()
	if err != nil || len(restaurants) == 0 {
		log.Printf("Warning: empty catalog source, using seed data")
		source = storage.SeedSource{}
		restaurants, _ = source.ListRestaurants()
	}
	catalog.SetRestaurants(restaurants)

	couriers, err := source.ListCouriers()
	if err != nil || len(couriers) == 0 {
		couriers = storage.SeedCouriers()
	}

	sync := service.NewSynchronizer(ledger)

	userID := config.UserID()
	dispatcher := ingress.NewDispatcher(ledger, sync, feed, userID)

	var mirror service.LocationMirror
	rdb, err := config.InitRedis()
	if err != nil {
		log.Printf("Warning: redis unavailable, promo dedup and location mirror disabled: %v", err)
	} else {
		defer rdb.Close()
		dispatcher.Promos = storage.NewPromoMarkers(rdb, 7*24*time.Hour)
		mirror = storage.NewLocationMirror(rdb, 24*time.Hour)
		dispatcher.Mirror = mirror
	}

	qr := service.DefaultQRGenerator{BaseURL: config.BaseURL()}
	checkout := service.NewCheckout(cart, ledger, sync, qr, storage.SeedCustomer(), couriers)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := config.NewKafkaReader(config.EventsTopic(), "storefront-"+userID)
	defer reader.Close()
	consumer := ingress.NewConsumer(reader, dispatcher)
	go consumer.Start(ctx)

	tracker := service.NewTracker(ledger, sync, mirror, 5*time.Second)
	tracker.Start(ctx)
	defer tracker.Stop()

	handler := &httpapi.Handler{
		Catalog:  catalog,
		Cart:     cart,
		Ledger:   ledger,
		Feed:     feed,
		Checkout: checkout,
		Menus:    source,
	}

	addr := config.HTTPAddr()
	log.Printf("Storefront starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, httpapi.NewRouter(handler)))
}
