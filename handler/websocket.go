package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"bassik_backend/config"
	"bassik_backend/database"
	"bassik_backend/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func getRedis() *redis.Client {
	redisOnce.Do(func() {
		addr := config.Config("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	})
	return redisClient
}

// PublishReservationEvent pushes a reservation snapshot onto the venue's
// channel so connected dashboards refresh live.
func PublishReservationEvent(venueID uint, reservation model.Reservation) {
	payload, err := json.Marshal(reservation)
	if err != nil {
		return
	}
	if err := getRedis().Publish(
		context.Background(),
		fmt.Sprintf("venue:%d:reservations", venueID),
		payload,
	).Err(); err != nil {
		log.Printf("Failed to publish reservation event: %v", err)
	}
}

// ReservationFeed streams live reservation updates for one venue to the
// admin dashboard.
func ReservationFeed(c *websocket.Conn) {
	slug := c.Params("slug")

	var venue model.Venue
	if err := database.DB.Where("slug = ?", slug).First(&venue).Error; err != nil {
		c.Close()
		return
	}
	venueID := venue.ID

	defer func() {
		mu.Lock()
		if clients[venueID] != nil {
			delete(clients[venueID], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[venueID] == nil {
		clients[venueID] = make(map[*websocket.Conn]bool)
	}
	clients[venueID][c] = true
	mu.Unlock()

	// initial snapshot so the dashboard has state before the first event
	var reservations []model.Reservation
	database.DB.
		Preload("Discounts").
		Where("venue_id = ?", venueID).
		Order("created_at desc").
		Limit(50).
		Find(&reservations)
	c.WriteJSON(reservations)

	pubsub := getRedis().Subscribe(
		context.Background(),
		fmt.Sprintf("venue:%d:reservations", venueID),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[venueID] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[venueID], conn)
			}
		}
		mu.Unlock()
	}
}
