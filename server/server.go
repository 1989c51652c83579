//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

// Package server exposes the routing pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"trpc.group/trpc-go/trpc-namespace-router/log"
	"trpc.group/trpc-go/trpc-namespace-router/orchestrator"
)

// RouteRequest is the request body of /v1/route and /v1/answer.
type RouteRequest struct {
	Query string `json:"query"`
}

// RouteResponse is the response body of /v1/route.
type RouteResponse struct {
	Matched      bool     `json:"matched"`
	NamespaceIDs []string `json:"namespace_ids,omitempty"`
}

// AnswerItem pairs a namespace id with its synthesized answer.
type AnswerItem struct {
	NamespaceID string `json:"namespace_id"`
	Answer      string `json:"answer"`
}

// AnswerResponse is the response body of /v1/answer.
type AnswerResponse struct {
	Matched      bool         `json:"matched"`
	NamespaceIDs []string     `json:"namespace_ids,omitempty"`
	Answers      []AnswerItem `json:"answers,omitempty"`
}

// errorResponse is the body of error replies.
type errorResponse struct {
	Error string `json:"error"`
}

// Server serves the routing pipeline over HTTP.
type Server struct {
	orchestrator *orchestrator.Orchestrator
	router       *mux.Router
	httpServer   *http.Server
	addr         string
}

// New creates a server over the given orchestrator.
func New(o *orchestrator.Orchestrator, opts ...Option) *Server {
	s := &Server{
		orchestrator: o,
		router:       mux.NewRouter(),
		addr:         ":8080",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/v1/route", s.handleRoute).Methods(http.MethodPost)
	s.router.HandleFunc("/v1/answer", s.handleAnswer).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
}

// Handler returns the full handler chain, CORS included.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.router)
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}
	log.Infof("http server listening on %s", s.addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server, draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	query, ok := s.decodeQuery(w, r)
	if !ok {
		return
	}
	result := s.orchestrator.ProcessQuery(r.Context(), query)
	writeJSON(w, http.StatusOK, RouteResponse{
		Matched:      result.Matched(),
		NamespaceIDs: result.NamespaceIDs,
	})
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	query, ok := s.decodeQuery(w, r)
	if !ok {
		return
	}
	result, err := s.orchestrator.Answer(r.Context(), query)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	response := AnswerResponse{
		Matched:      result.Matched(),
		NamespaceIDs: result.NamespaceIDs,
	}
	for _, answer := range result.Answers {
		response.Answers = append(response.Answers, AnswerItem{
			NamespaceID: answer.NamespaceID,
			Answer:      answer.Text,
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeQuery parses the request body and rejects blank queries.
func (s *Server) decodeQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	var request RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return "", false
	}
	query := strings.TrimSpace(request.Query)
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query must not be empty"})
		return "", false
	}
	return query, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("encode response: %v", err)
	}
}
