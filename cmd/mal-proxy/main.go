// Command mal-proxy exposes a small HTTP facade over the MyAnimeList API
// client: paced, cached catalog lookups plus Prometheus metrics.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/kuromu/mal-client/pkg/client"
	"github.com/kuromu/mal-client/pkg/logging"
)

func main() {
	clientID := os.Getenv("MAL_CLIENT_ID")
	if clientID == "" {
		log.Fatal("MAL_CLIENT_ID is required")
	}

	port := getEnv("PORT", "8080")
	redisURL := os.Getenv("REDIS_URL")

	logger := logging.Setup(logging.DefaultConfig())

	cfg := client.Config{
		ClientID:     clientID,
		AutoTruncate: true,
	}

	// Cache is optional: enabled only when Redis is reachable.
	if redisURL != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisURL})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		logger.Info().Str("addr", redisURL).Msg("Response cache enabled")
		cfg.Redis = redisClient
	}

	malClient, err := client.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	http.HandleFunc("/health", healthHandler)
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/search/anime", animeSearchHandler(malClient))
	http.HandleFunc("/search/manga", mangaSearchHandler(malClient))
	http.HandleFunc("/anime/", animeDetailsHandler(malClient))

	addr := ":" + port
	logger.Info().Str("addr", addr).Msg("Starting proxy server")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func animeSearchHandler(c *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		page, err := c.AnimeSearch(ctx, q, searchOptions(r)...)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, page)
	}
}

func mangaSearchHandler(c *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		page, err := c.MangaSearch(ctx, q, searchOptions(r)...)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, page)
	}
}

func animeDetailsHandler(c *client.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/anime/")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			http.Error(w, "anime id must be an integer", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		anime, err := c.GetAnime(ctx, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, anime)
	}
}

func searchOptions(r *http.Request) []client.CallOption {
	var opts []client.CallOption
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			opts = append(opts, client.Limit(limit))
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			opts = append(opts, client.Offset(offset))
		}
	}
	return opts
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// writeError maps client errors to proxy status codes. Upstream errors keep
// their original status.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		http.Error(w, apiErr.Error(), apiErr.StatusCode)
	case errors.Is(err, client.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
