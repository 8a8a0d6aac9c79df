package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/EasterCompany/dex-camb-tools/cache"
	"github.com/EasterCompany/dex-camb-tools/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal error loading config: %v", err)
	}
	if !cfg.Redis.Enabled {
		log.Fatal("Cache is not enabled; set redis.enabled in the config file.")
	}

	db, err := cache.New(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	if db == nil {
		log.Fatal("Cache is not configured; set redis.addr in the config file.")
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	entries, err := db.Entries(ctx)
	if err != nil {
		log.Fatalf("Failed to list keys: %v", err)
	}
	if len(entries) == 0 {
		fmt.Println("Cache is empty.")
		return
	}

	for _, entry := range entries {
		fmt.Printf("\n--- Key: %s ---\n", entry.Key)
		fmt.Printf("Type: %s\n", entry.Type)
		switch {
		case strings.HasSuffix(entry.Key, ":invocations"):
			records, err := db.RecentInvocations(ctx, entry.Size)
			if err != nil {
				log.Printf("Failed to read invocation history: %v", err)
				continue
			}
			fmt.Printf("Entries: %d\n", len(records))
			for _, rec := range records {
				line := fmt.Sprintf("  - %s  %s (%s)", rec.At.Format(time.RFC3339), rec.Tool, rec.Duration)
				if rec.Error != "" {
					line += "  error: " + rec.Error
				}
				fmt.Println(line)
			}
		case entry.Type == "string":
			fmt.Printf("Size: %d bytes\n", entry.Size)
			if entry.TTL > 0 {
				fmt.Printf("Expires in: %s\n", entry.TTL.Round(time.Second))
			}
		default:
			fmt.Println("Value: (unsupported type for printing)")
		}
	}
}
