package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"wecare/config"
	"wecare/controllers"
	"wecare/invoice"
	"wecare/routes"
	"wecare/store"
)

func main() {
	cfg := config.Load()

	var zl *zap.Logger
	var err error
	if cfg.Production {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	st, err := store.Open(cfg.InventoryFile)
	if err != nil {
		zap.S().Fatalf("open catalog: %v", err)
	}
	zap.S().Infof("catalog loaded from %s (%d products)", cfg.InventoryFile, st.Len())

	if err := os.MkdirAll(cfg.InvoiceDir, 0o755); err != nil {
		zap.S().Fatalf("create invoice dir: %v", err)
	}

	svc := invoice.NewService(st, cfg, os.Stdout)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins, // คั่นด้วย comma
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(app, routes.Deps{
		Products:  &controllers.ProductController{Store: st},
		Invoices:  &controllers.InvoiceController{Svc: svc},
		Auth:      &controllers.AuthController{Cfg: cfg},
		JWTSecret: cfg.JWTSecret,
	})

	log.Fatal(app.Listen(cfg.Addr))
}
