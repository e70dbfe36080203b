// Package rest wires the triage endpoints into an HTTP router.
package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/crimson-sun/triage/internal/engine"
	"github.com/crimson-sun/triage/internal/store"
	"github.com/crimson-sun/triage/internal/transport/rest/handler"
)

// NewRouter creates the API router with all endpoints.
func NewRouter(eng *engine.Engine, st *store.Store) http.Handler {
	r := mux.NewRouter()

	triage := handler.NewTriageHandler(eng, st)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/triage/assess", triage.Assess).Methods("POST")
	v1.HandleFunc("/triage/assessments", triage.List).Methods("GET")
	v1.HandleFunc("/triage/assessments/{id}", triage.Get).Methods("GET")
	v1.HandleFunc("/triage/assessments/{id}/review", triage.Review).Methods("POST")
	v1.HandleFunc("/triage/stats", triage.Stats).Methods("GET")

	// The service stays up even with a degraded model, so health reports the
	// engine state instead of failing.
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","model":"` + eng.State().String() + `"}`))
	}).Methods("GET")

	return r
}
