package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/bglenden/carving-designer-sub000/internal/config"
	"github.com/bglenden/carving-designer-sub000/internal/server"
	"github.com/bglenden/carving-designer-sub000/internal/store"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

func main() {
	configPath := flag.String("config", "", "TOML settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	st := store.New(db)
	if err := st.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "carved",
	})

	app.Use(recover.New())
	app.Use(server.Logger())

	server.New(st, cfg).Register(app)

	log.Printf("carved listening on %s (db %s)", cfg.Addr, cfg.DBPath)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
