package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tavola-pos/dashboard/internal/config"
	"github.com/tavola-pos/dashboard/internal/persist"
	"github.com/tavola-pos/dashboard/internal/router"
	"github.com/tavola-pos/dashboard/internal/store"
	"github.com/tavola-pos/dashboard/internal/ticker"
	"github.com/tavola-pos/dashboard/internal/ws"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
	cfg := config.Load()

	// Load prior state or seed fresh.
	bridge := persist.NewFileBridge(cfg.StatePath)
	snap, _ := bridge.Load()
	var st *store.Store
	if snap != nil {
		st = store.New(snap.MenuItems, snap.Tables, snap.Orders)
		log.Printf("Restored state from %s (%d orders)", cfg.StatePath, len(snap.Orders))
	} else {
		menu, tables, orders := store.Seed(time.Now())
		st = store.New(menu, tables, orders)
		log.Println("No prior state, seeded demo data")
	}

	// Live updates.
	hub := ws.NewHub()
	go hub.Run()

	// Every mutation: broadcast to dashboard clients and save the
	// whole snapshot, fire-and-forget. Save failures are logged and
	// otherwise swallowed.
	st.SetOnChange(func(event string) {
		hub.Broadcast(ws.Event{Type: event})
		go func() {
			snap := persist.Snapshot{
				MenuItems: st.Menu(),
				Tables:    st.Tables(),
				Orders:    st.Orders(),
			}
			if err := bridge.Save(&snap); err != nil {
				log.Printf("ERROR: save snapshot: %v", err)
			}
		}()
	})

	// Demo ticker: advances one served order to paid per tick.
	var demo *ticker.Ticker
	if cfg.DemoMode {
		demo = ticker.New(st, cfg.TickInterval)
		demo.Start()
		log.Printf("Demo ticker running every %s", cfg.TickInterval)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.New(st, hub),
	}

	go func() {
		log.Printf("Starting server on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	// Graceful shutdown: stop the ticker before the listener so no
	// tick fires against a torn-down application.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down")

	if demo != nil {
		demo.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("ERROR: shutdown: %v", err)
	}
}
