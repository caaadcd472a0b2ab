package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"oldenera-wiki/data"
	"oldenera-wiki/internal/creatures"
	"oldenera-wiki/pkg/app"
	"oldenera-wiki/pkg/cache"
	"oldenera-wiki/pkg/catalog"
	"oldenera-wiki/pkg/config"
)

// Writes the OpenAPI document of the wiki API without starting a server.
// Route registration never loads the catalog, so no data is read.
func main() {
	output := flag.String("output", "", "File to write the document to (default stdout)")
	prefix := flag.String("prefix", config.GetEnv("API_PREFIX", ""), "API prefix the document is served under")
	flag.Parse()

	mod := creatures.New(catalog.NewStore(data.FS()), cache.Disabled{}, nil, creatures.Config{})
	defer mod.Stop()

	_, api := app.NewRouter(app.ServerOptions{
		ServiceName: "oldenera-wiki",
		APIPrefix:   *prefix,
	}, mod)

	doc, err := json.MarshalIndent(api.OpenAPI(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode OpenAPI document: %v", err)
	}

	if *output == "" {
		fmt.Println(string(doc))
		return
	}

	if err := os.WriteFile(*output, append(doc, '\n'), 0o644); err != nil {
		log.Fatalf("Failed to write OpenAPI document: %v", err)
	}
	log.Printf("📄 OpenAPI document written to %s", *output)
}
