package main

import (
	"fmt"
	"log"

	"github.com/Sanjanabonagiri16/Tabletrack/configs"
	"github.com/Sanjanabonagiri16/Tabletrack/middlewares"
	"github.com/Sanjanabonagiri16/Tabletrack/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedUsers(cfg); err != nil {
		log.Fatalf("seed users failed: %v", err)
	}
	if err := configs.SeedTables(cfg.TableCount); err != nil {
		log.Fatalf("seed tables failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
