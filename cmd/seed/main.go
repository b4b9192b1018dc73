// Command seed writes a fresh demo snapshot to the state path,
// overwriting whatever is there. Useful to reset the dashboard
// between demos.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/tavola-pos/dashboard/internal/persist"
	"github.com/tavola-pos/dashboard/internal/store"
)

func main() {
	path := flag.String("state", "", "Path of the snapshot file")
	flag.Parse()

	// Fall back to environment, then default.
	if *path == "" {
		*path = os.Getenv("STATE_PATH")
	}
	if *path == "" {
		*path = persist.DefaultFileName
	}

	menu, tables, orders := store.Seed(time.Now())
	snap := persist.Snapshot{MenuItems: menu, Tables: tables, Orders: orders}

	bridge := persist.NewFileBridge(*path)
	if err := bridge.Save(&snap); err != nil {
		log.Fatalf("Failed to write seed snapshot: %v", err)
	}

	log.Printf("Seed snapshot written to %s (%d menu items, %d tables, %d orders)",
		*path, len(menu), len(tables), len(orders))
}
