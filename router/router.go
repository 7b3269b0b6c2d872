// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/camp-apply/cliparse"
	"github.com/danielhkuo/camp-apply/db"
	"github.com/danielhkuo/camp-apply/handlers"
	"github.com/danielhkuo/camp-apply/middleware"
	"github.com/danielhkuo/camp-apply/views"
)

func NewRouter(store db.Store, renderer *views.Renderer, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	applicantHandler := handlers.NewApplicantHandler(store, renderer, cfg)
	adminHandler := handlers.NewAdminHandler(store, renderer, cfg)

	// Health check and assets
	mux.HandleFunc("GET /health", handlers.Health(store))
	mux.Handle("GET /static/", views.Static())

	// Applicant pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(applicantHandler.Index))
	mux.HandleFunc("GET /apply", middleware.WithLogging(applicantHandler.ApplyForm))
	mux.HandleFunc("POST /apply", middleware.WithLogging(applicantHandler.SubmitApplication))
	mux.HandleFunc("GET /find", middleware.WithLogging(applicantHandler.FindForm))
	mux.HandleFunc("GET /reviewApplication", middleware.WithLogging(applicantHandler.ReviewForm))
	mux.HandleFunc("POST /reviewApplication", middleware.WithLogging(applicantHandler.ReviewApplication))

	// Admin pages (optionally guarded by ADMIN_KEY)
	mux.HandleFunc("GET /adminGFA", middleware.WithLogging(adminHandler.GPAForm))
	mux.HandleFunc("POST /processAdminGFA", middleware.WithLogging(adminHandler.ProcessGPAFilter))
	mux.HandleFunc("GET /adminRemove", middleware.WithLogging(adminHandler.RemoveForm))
	mux.HandleFunc("POST /processAdminRemove", middleware.WithLogging(adminHandler.ProcessRemove))

	return mux
}
