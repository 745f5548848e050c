//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"syscall/js"
	"time"

	"github.com/hack-pad/hackpadfs/indexeddb"
	"go.uber.org/zap"

	"github.com/kittclouds/lineage/internal/config"
	"github.com/kittclouds/lineage/internal/index"
	"github.com/kittclouds/lineage/internal/kin"
	"github.com/kittclouds/lineage/internal/loader"
	"github.com/kittclouds/lineage/internal/logging"
	"github.com/kittclouds/lineage/internal/mentions"
	"github.com/kittclouds/lineage/internal/profile"
	"github.com/kittclouds/lineage/internal/search"
	"github.com/kittclouds/lineage/internal/tables"
)

// Version info
const Version = "0.1.0"

// Global state
var (
	store      tables.Tables
	idx        *index.Index
	cache      *profile.Cache
	searcher   *search.FuzzyProvider
	dictionary *mentions.Dictionary
	allPeople  []tables.PersonRecord
	log        *zap.Logger
)

func main() {
	var err error
	log, err = logging.New("info", "console")
	if err != nil {
		println("[Lineage] FATAL: failed to initialize logger:", err.Error())
		return
	}

	println("[Lineage] WASM Ready v" + Version)

	// Register exports
	js.Global().Set("Lineage", js.ValueOf(map[string]interface{}{
		"version":    js.FuncOf(getVersion),
		"initialize": js.FuncOf(initialize),
		"search":     js.FuncOf(searchPeople),
		"tribes":     js.FuncOf(listTribes),
		"profile":    js.FuncOf(getProfile),
		"familyTree": js.FuncOf(familyTree),
		"mentions":   js.FuncOf(scanMentions),
		"stats":      js.FuncOf(stats),
	}))

	select {}
}

// getVersion returns the module version
func getVersion(this js.Value, args []js.Value) interface{} {
	return Version
}

// initialize loads the dataset and builds the join indices.
// Args: [manifestPath string (optional, default "lineage.yaml")]
func initialize(this js.Value, args []js.Value) interface{} {
	manifestPath := "lineage.yaml"
	if len(args) > 0 && args[0].String() != "" {
		manifestPath = args[0].String()
	}

	ctx := context.Background()
	fs, err := indexeddb.NewFS(ctx, "lineage", indexeddb.Options{})
	if err != nil {
		return errorResult("failed to create idb fs: " + err.Error())
	}

	manifest, err := config.Load(fs, manifestPath)
	if err != nil {
		return errorResult("manifest: " + err.Error())
	}

	start := time.Now()
	dataset := loader.New(fs, log).Load(ctx, manifest)

	store = tables.NewMemTables(dataset)
	idx = index.Build(store)
	allPeople = idx.People()

	assembler := profile.NewAssembler(idx)

	labels, _ := store.Labels()
	dictionary = mentions.Compile(mentions.BuildEntries(allPeople, labels))
	assembler.SetMentionScanner(dictionary)

	cache = profile.NewCache(assembler)
	searcher = search.NewFuzzyProvider(allPeople)

	log.Info("dataset loaded",
		zap.Int("people", len(allPeople)),
		zap.Int("dictionary_patterns", dictionary.Size()),
		zap.Duration("elapsed", time.Since(start)))

	return successResult("initialized")
}

// searchPeople runs a fuzzy name search.
// Args: [query string, limit int, filterJSON string (optional {"tribe":..,"sex":..})]
// Returns: JSON array of person records
func searchPeople(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("requires 2+ args: query, limit, [filterJSON]")
	}
	if searcher == nil {
		return errorResult("not initialized")
	}

	query := args[0].String()
	limit := args[1].Int()

	var filter search.Filter
	if len(args) > 2 && args[2].String() != "" && args[2].String() != "null" {
		if err := json.Unmarshal([]byte(args[2].String()), &filter); err != nil {
			return errorResult("invalid filter json: " + err.Error())
		}
	}

	results := filter.Apply(searcher.Search(query, limit))

	jsonBytes, _ := json.Marshal(results)
	return string(jsonBytes)
}

// listTribes returns the distinct tribe values as a JSON array.
func listTribes(this js.Value, args []js.Value) interface{} {
	if allPeople == nil {
		return errorResult("not initialized")
	}
	jsonBytes, _ := json.Marshal(search.Tribes(allPeople))
	return string(jsonBytes)
}

// getProfile assembles (or serves from cache) a full person profile.
// Args: [keyJSON string {"person_id":..} and/or {"person_name":..}]
func getProfile(this js.Value, args []js.Value) interface{} {
	p, errRes := profileForArgs(args)
	if errRes != nil {
		return errRes
	}

	jsonBytes, err := json.Marshal(p)
	if err != nil {
		return errorResult(err.Error())
	}
	return string(jsonBytes)
}

// familyTree returns the family tree outline for a person.
// Args: same as profile
func familyTree(this js.Value, args []js.Value) interface{} {
	p, errRes := profileForArgs(args)
	if errRes != nil {
		return errRes
	}

	jsonBytes, _ := json.Marshal(kin.Outline(p))
	return string(jsonBytes)
}

func profileForArgs(args []js.Value) (*profile.PersonProfile, interface{}) {
	if len(args) < 1 {
		return nil, errorResult("requires 1 arg: keyJSON")
	}
	if cache == nil {
		return nil, errorResult("not initialized")
	}

	var key struct {
		PersonID   string `json:"person_id"`
		PersonName string `json:"person_name"`
	}
	if err := json.Unmarshal([]byte(args[0].String()), &key); err != nil {
		return nil, errorResult("invalid key json: " + err.Error())
	}

	p, err := cache.GetOrAssemble(profile.Key{ID: key.PersonID, Name: key.PersonName})
	if err != nil {
		return nil, errorResult(err.Error())
	}
	return p, nil
}

// scanMentions finds known people named in free text.
// Args: [text string]
// Returns: JSON array of person names
func scanMentions(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return "[]"
	}
	if dictionary == nil {
		return errorResult("not initialized")
	}

	names := dictionary.MentionedIn(args[0].String())
	if names == nil {
		names = []string{}
	}
	jsonBytes, _ := json.Marshal(names)
	return string(jsonBytes)
}

// stats reports dataset counts.
func stats(this js.Value, args []js.Value) interface{} {
	if store == nil {
		return errorResult("not initialized")
	}

	people, _ := store.CountPeople()
	verses, _ := store.CountVerses()

	jsonBytes, _ := json.Marshal(map[string]interface{}{
		"people":   people,
		"verses":   verses,
		"profiles": cache.Len(),
	})
	return string(jsonBytes)
}

// Helper: Create error result
func errorResult(msg string) interface{} {
	result := map[string]interface{}{
		"error": msg,
	}
	jsonBytes, _ := json.Marshal(result)
	return string(jsonBytes)
}

// Helper: Create success result
func successResult(msg string) interface{} {
	result := map[string]interface{}{
		"success": msg,
	}
	jsonBytes, _ := json.Marshal(result)
	return string(jsonBytes)
}
