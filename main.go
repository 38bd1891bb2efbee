package main

import (
	"log"
	"os"
	"time"

	"addis-kitchen/config"
	httpapi "addis-kitchen/internal/api/http"
	"addis-kitchen/internal/cart"
	"addis-kitchen/internal/service"
	"addis-kitchen/internal/storage"
)

// logNotifier is the default toast sink: messages are observational only.
type logNotifier struct{}

func (logNotifier) Success(message string) { log.Printf("[storefront] %s", message) }
func (logNotifier) Error(message string)   { log.Printf("[storefront] ERROR: %s", message) }

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	redisClient := config.MustInitRedis()
	cache := storage.NewRedisCache(redisClient, 30*time.Second)

	writer := config.NewKafkaWriter(config.Getenv("KAFKA_TOPIC", "storefront-events"))
	defer writer.Close()
	events := storage.NewKafkaPublisher(writer)

	carts := cart.NewManager()
	menuSvc := service.NewMenuService(repo, cache)
	qr := service.DefaultQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost:8080")}
	orderSvc := service.NewOrderService(carts, menuSvc, repo, events, qr)
	bookingSvc := service.NewBookingService(repo, events)
	adminSvc := service.NewAdminService(repo, repo, cache, events, logNotifier{})

	handler := httpapi.NewHandler(menuSvc, orderSvc, bookingSvc, adminSvc)
	roles := httpapi.TokenRoleProvider{Token: os.Getenv("ADMIN_TOKEN")}
	router := httpapi.NewRouter(handler, roles)

	httpapi.StartServer(":"+config.Getenv("PORT", "8080"), router)
}
