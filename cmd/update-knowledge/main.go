package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cleitonmarx/marvins-market/internal/app"
	"github.com/cleitonmarx/marvins-market/internal/domain"
)

func main() {
	req, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := app.NewKnowledgeUpdateApp(req).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "update-knowledge: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads the update request from args. Modes are validated here so a
// typo fails before any connection is opened.
func parseFlags(args []string) (domain.KnowledgeUpdateRequest, error) {
	fs := flag.NewFlagSet("update-knowledge", flag.ContinueOnError)
	collection := fs.String("collection", "", "knowledge collection to update (defaults to KNOWLEDGE_COLLECTION)")
	store := fs.String("store", string(domain.StoreMode_Persistent), "vector store: base, persistent or http")
	mode := fs.String("mode", string(domain.UpdateMode_Upsert), "write mode: upsert or reset")
	if err := fs.Parse(args); err != nil {
		return domain.KnowledgeUpdateRequest{}, err
	}

	storeMode, err := domain.ParseStoreMode(*store)
	if err != nil {
		return domain.KnowledgeUpdateRequest{}, err
	}
	updateMode, err := domain.ParseUpdateMode(*mode)
	if err != nil {
		return domain.KnowledgeUpdateRequest{}, err
	}

	return domain.KnowledgeUpdateRequest{
		Collection: *collection,
		StoreMode:  storeMode,
		Mode:       updateMode,
	}, nil
}
