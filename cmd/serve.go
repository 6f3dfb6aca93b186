package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edurishi/sales-assistant/internal/model"
	"github.com/edurishi/sales-assistant/internal/pipeline"
	"github.com/edurishi/sales-assistant/internal/session"
	"github.com/edurishi/sales-assistant/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for leads, deals, and forecasts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		// Set up routes
		mux := http.NewServeMux()

		mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		mux.HandleFunc("POST /leads", func(w http.ResponseWriter, r *http.Request) {
			var rec model.Record
			if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}

			lead := session.New().CreateLead(rec)
			if err := st.SaveLead(r.Context(), lead); err != nil {
				zap.L().Error("serve: save lead", zap.Error(err))
				http.Error(w, `{"error":"save failed"}`, http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusCreated, lead)
		})

		mux.HandleFunc("GET /leads/{id}", func(w http.ResponseWriter, r *http.Request) {
			lead, err := st.GetLead(r.Context(), r.PathValue("id"))
			if err != nil {
				http.Error(w, `{"error":"lead not found"}`, http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, lead)
		})

		mux.HandleFunc("GET /leads", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			leads, err := st.ListLeads(r.Context(), store.LeadFilter{
				Status:       q.Get("status"),
				City:         q.Get("city"),
				State:        q.Get("state"),
				BusinessType: q.Get("business_type"),
			})
			if err != nil {
				zap.L().Error("serve: list leads", zap.Error(err))
				http.Error(w, `{"error":"list failed"}`, http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, leads)
		})

		mux.HandleFunc("POST /deals", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				LeadID string  `json:"lead_id"`
				Name   string  `json:"name"`
				Amount float64 `json:"amount"`
				Stage  string  `json:"stage"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}
			if req.LeadID == "" {
				http.Error(w, `{"error":"lead_id is required"}`, http.StatusBadRequest)
				return
			}

			lead, err := st.GetLead(r.Context(), req.LeadID)
			if err != nil {
				http.Error(w, `{"error":"lead not found"}`, http.StatusNotFound)
				return
			}

			deal := pipeline.NewDeal(*lead, pipeline.DealOptions{
				Name:   req.Name,
				Amount: req.Amount,
				Stage:  req.Stage,
			})
			if err := st.SaveDeal(r.Context(), &deal); err != nil {
				zap.L().Error("serve: save deal", zap.Error(err))
				http.Error(w, `{"error":"save failed"}`, http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusCreated, deal)
		})

		mux.HandleFunc("POST /deals/{id}/stage", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Stage string `json:"stage"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}
			if !validStage(req.Stage) {
				http.Error(w, `{"error":"unknown stage"}`, http.StatusBadRequest)
				return
			}

			id := r.PathValue("id")
			probability := pipeline.StageProbability(req.Stage)
			if err := st.UpdateDealStage(r.Context(), id, req.Stage, probability); err != nil {
				http.Error(w, `{"error":"deal not found"}`, http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"id":          id,
				"stage":       req.Stage,
				"probability": probability,
			})
		})

		mux.HandleFunc("GET /pipeline/summary", func(w http.ResponseWriter, r *http.Request) {
			deals, err := st.ListDeals(r.Context(), listAllDeals())
			if err != nil {
				zap.L().Error("serve: list deals", zap.Error(err))
				http.Error(w, `{"error":"list failed"}`, http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, summarizeDeals(deals))
		})

		mux.HandleFunc("GET /forecast", func(w http.ResponseWriter, r *http.Request) {
			stored, err := st.ListDeals(r.Context(), listAllDeals())
			if err != nil {
				zap.L().Error("serve: list deals", zap.Error(err))
				http.Error(w, `{"error":"list failed"}`, http.StatusInternalServerError)
				return
			}
			deals := make([]*model.Deal, len(stored))
			for i := range stored {
				deals[i] = &stored[i]
			}
			f := pipeline.BuildForecast(deals, cfg.Forecast.HorizonDays, time.Now())
			writeJSON(w, http.StatusOK, f)
		})

		mux.HandleFunc("GET /activities", func(w http.ResponseWriter, r *http.Request) {
			activities, err := st.ListActivities(r.Context(), 0)
			if err != nil {
				zap.L().Error("serve: list activities", zap.Error(err))
				http.Error(w, `{"error":"list failed"}`, http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, activities)
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
