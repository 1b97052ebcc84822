package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"suggest/internal/customdict"
	"suggest/internal/dictionary"
	sg "suggest/internal/suggest"
	"suggest/pkg/options"
)

func main() {
	redisAddr := getenv("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := getEnvInt("REDIS_DB", 0)

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	store := customdict.New(client)

	dictionaryPath := getenv("DICTIONARY_PATH", "en.txt")
	bigramsPath := os.Getenv("BIGRAMS_PATH")
	dict, err := loadDictionary(dictionaryPath, bigramsPath)
	if err != nil {
		log.Fatalf("dictionary error: %v", err)
	}
	log.Printf("dictionary loaded: %d words", dict.Len())

	engine, err := sg.NewEngine(sg.DefaultConfig, dict, store,
		options.WithLayout(getenv("KEYBOARD_LAYOUT", "qwerty")),
		options.WithMaxSuggestions(getEnvInt("MAX_SUGGESTIONS", 8)),
	)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/suggest", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text string `json:"text"`
			Prev string `json:"prev"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		res := engine.Suggest(req.Text, req.Prev)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"input":       req.Text,
			"suggestions": res,
		})
	})

	mux.HandleFunc("/api/v1/custom-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word string `json:"word"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		if err := engine.AddCustomWord(req.Word); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/custom-word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
		if word == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "word is required"})
			return
		}
		if err := engine.RemoveCustomWord(word); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	addr := getenv("HTTP_ADDR", ":8080")
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

// loadDictionary понимает бинарный образ (.bin) и текстовый частотный список.
func loadDictionary(path, bigramsPath string) (*dictionary.Dict, error) {
	if strings.HasSuffix(path, ".bin") {
		return dictionary.LoadBinary(path)
	}
	dict := dictionary.New()
	if err := dictionary.LoadFrequencies(dict, path); err != nil {
		return nil, err
	}
	if bigramsPath != "" {
		if err := dictionary.LoadBigrams(dict, bigramsPath); err != nil {
			return nil, err
		}
	}
	return dict, nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
