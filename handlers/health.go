// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/camp-apply/db"
	"github.com/danielhkuo/camp-apply/middleware"
)

// Health handles GET /health
func Health(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := storeContext(r, 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			middleware.Logger(r.Context()).Error("store ping failed", "error", err)
			http.Error(w, "Unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
