package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"time"

	"delivery-storefront/config"

	"github.com/segmentio/kafka-go"
)

// Wire shapes, kept in sync with the storefront's ingress contract.

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type deliveryUpdate struct {
	DeliveryID string  `json:"delivery_id"`
	Status     string  `json:"status"`
	Location   *latLng `json:"location,omitempty"`
	Message    string  `json:"message"`
}

type orderStatusUpdate struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type promotion struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	PromoCode string `json:"promo_code,omitempty"`
}

type systemNotification struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

var deliverySteps = []struct {
	status  string
	message string
}{
	{"assigned", "Un livreur a été assigné à votre commande"},
	{"heading_to_restaurant", "Le livreur se dirige vers le restaurant"},
	{"at_restaurant", "Le livreur est arrivé au restaurant"},
	{"picking_up", "Le livreur récupère votre commande"},
	{"delivering", "Votre commande est en cours de livraison"},
	{"arrived", "Le livreur est arrivé à votre adresse"},
	{"completed", "Votre commande a été livrée. Bon appétit !"},
}

func main() {
	deliveryID := flag.String("delivery", "", "delivery id to walk through the status sequence (from the checkout response)")
	orderID := flag.String("order", "", "order id for a confirmation event")
	delay := flag.Duration("delay", 10*time.Second, "pause between events")
	flag.Parse()

	if *deliveryID == "" {
		log.Fatal("courier-sim: -delivery is required")
	}

	config.Load()
	writer := config.NewKafkaWriter(config.EventsTopic())
	defer writer.Close()

	ctx := context.Background()
	log.Printf("Simulating delivery %s, one event every %s", *deliveryID, *delay)

	if *orderID != "" {
		publish(ctx, writer, *orderID, "order_status_update", orderStatusUpdate{
			OrderID: *orderID,
			Status:  "confirmed",
			Message: "Votre commande a été confirmée par le restaurant",
		})
		time.Sleep(*delay)
	}

	location := latLng{Lat: 6.4963, Lng: 2.6297}
	for _, step := range deliverySteps {
		update := deliveryUpdate{
			DeliveryID: *deliveryID,
			Status:     step.status,
			Message:    step.message,
		}
		if step.status == "delivering" || step.status == "arrived" {
			location.Lat += 0.0004
			location.Lng -= 0.0003
			loc := location
			update.Location = &loc
		}
		publish(ctx, writer, *deliveryID, "delivery_update", update)
		time.Sleep(*delay)
	}

	publish(ctx, writer, "promo", "promotion", promotion{
		Title:     "-20% sur votre prochaine commande",
		Message:   "Utilisez le code MERCI20 avant dimanche",
		PromoCode: "MERCI20",
	})

	publish(ctx, writer, "system", "system_notification", systemNotification{
		Title:    "Maintenance prévue",
		Message:  "Le service sera indisponible dimanche de 02h à 04h",
		Severity: "info",
	})

	log.Println("Simulation finished")
}

func publish(ctx context.Context, writer *kafka.Writer, key, eventType string, payload interface{}) {
	body, _ := json.Marshal(payload)
	value, _ := json.Marshal(envelope{Type: eventType, Payload: body})
	if err := writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	}); err != nil {
		log.Printf("Error publishing %s: %v", eventType, err)
		return
	}
	log.Printf("Published %s", eventType)
}
