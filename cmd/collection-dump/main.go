// collection-dump fetches every record of a NocoBase collection and writes it
// as JSON to stdout, for checking what the dashboard will aggregate.
//
// Usage (from backend directory):
//   BASE_URL=... API_KEY=... go run ./cmd/collection-dump -collection SRB_Details
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/iitmspaces/assets_backend/config"
	"github.com/iitmspaces/assets_backend/nocobase"
)

func main() {
	collection := flag.String("collection", "SRB_Details", "NocoBase collection to dump")
	flag.Parse()

	logger := config.GetLogger()
	client, err := nocobase.NewClient(config.GetBaseURL(), config.GetAPIKey(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "client init failed (set BASE_URL and API_KEY): %v\n", err)
		os.Exit(1)
	}

	records, err := client.FetchAllRecords(context.Background(), *collection)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch failed: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		fmt.Fprintf(os.Stderr, "encode failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%d records in %s\n", len(records), *collection)
}
