package main // Entry point package

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "sendit-admin/internal/api"
    "sendit-admin/internal/config"
    "sendit-admin/internal/handler"
    "sendit-admin/internal/queue"
    "sendit-admin/internal/router"
    "sendit-admin/internal/session"
    "sendit-admin/internal/view"
)

func main() {
    // .env is optional; system environment variables win when both exist.
    if err := godotenv.Load(); err == nil {
        log.Println("loaded configuration from .env")
    }
    cfg := config.Load()

    // Redis keeps sessions across restarts; without it the panel still
    // runs, logins just do not survive a restart.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable, falling back to in-memory sessions")
    }
    store := session.NewStore(rdb)

    events := queue.NewPublisher(cfg.AMQPURL)
    defer events.Close()

    client := api.New(cfg.APIBaseURL)
    h := handler.New(cfg, client, store, events)

    e := echo.New()
    renderer, err := view.NewRenderer()
    if err != nil {
        log.Fatalf("parse templates: %v", err)
    }
    e.Renderer = renderer
    router.RegisterRoutes(e, cfg, h, store)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s, backend=%s)", addr, cfg.Env, cfg.APIBaseURL)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
