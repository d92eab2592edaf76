package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-inventory-api/internal/config"
	"go-inventory-api/internal/handler"
	"go-inventory-api/internal/metrics"
	"go-inventory-api/internal/middleware"
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"
	"go-inventory-api/internal/ws"
	"go-inventory-api/pkg/database"
	"go-inventory-api/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load env + config
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()
	jwt.Configure(cfg.JWTSecret)

	// 2. Setup database
	db := database.Connect(cfg.DSN())
	if err := db.AutoMigrate(&model.Supplier{}, &model.Product{}, &model.Transaction{}, &model.User{}); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	productRepo := repository.NewProductRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	invService := service.NewInventoryService(productRepo, txRepo, db, wsHub)
	productService := service.NewProductService(productRepo, supplierRepo, txRepo, db, wsHub)
	supplierService := service.NewSupplierService(supplierRepo, productRepo)
	reportService := service.NewReportService(productRepo, supplierRepo, txRepo)
	authService := service.NewAuthService(userRepo)

	productHandler := handler.NewProductHandler(productService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	txHandler := handler.NewTransactionHandler(invService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory Management API v1.0",
	})

	app.Use(logger.New())  // request logging
	app.Use(recover.New()) // panic recovery
	app.Use(cors.New())    // CORS

	if cfg.MetricsEnabled {
		app.Use(metrics.Middleware())
		app.Get("/metrics", metrics.Handler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// 7. Routes
	api := app.Group("/api")
	requireAuth := middleware.RequireAuth(userRepo)

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// Products (report routes before /:id)
	products := api.Group("/products")
	products.Get("/reports/low-stock", reportHandler.GetLowStock)
	products.Get("/reports/inventory-value", reportHandler.GetInventoryValue)
	products.Get("/reports/by-supplier", reportHandler.GetProductsBySupplier)
	products.Get("/reports/export", reportHandler.ExportProducts)
	products.Get("/", productHandler.GetProducts)
	products.Post("/", requireAuth, productHandler.CreateProduct)
	products.Get("/:id", productHandler.GetProduct)
	products.Put("/:id", requireAuth, productHandler.UpdateProduct)
	products.Delete("/:id", requireAuth, productHandler.DeleteProduct)

	// Suppliers
	suppliers := api.Group("/suppliers")
	suppliers.Get("/reports/performance", reportHandler.GetSupplierPerformance)
	suppliers.Get("/", supplierHandler.GetSuppliers)
	suppliers.Post("/", requireAuth, supplierHandler.CreateSupplier)
	suppliers.Get("/:id", supplierHandler.GetSupplier)
	suppliers.Put("/:id", requireAuth, supplierHandler.UpdateSupplier)
	suppliers.Delete("/:id", requireAuth, supplierHandler.DeleteSupplier)

	// Transactions
	transactions := api.Group("/transactions")
	transactions.Get("/reports/summary", reportHandler.GetTransactionSummary)
	transactions.Get("/", txHandler.GetTransactions)
	transactions.Post("/", requireAuth, txHandler.CreateTransaction)
	transactions.Get("/:id", txHandler.GetTransaction)
	transactions.Put("/:id", requireAuth, txHandler.UpdateTransaction)
	transactions.Delete("/:id", requireAuth, txHandler.DeleteTransaction)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Administrator",
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin@example.com / admin123")
	}
}
