package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusbuzz/internal/common"
	"campusbuzz/internal/wire"
)

func main() {
	metricsAddr := flag.String("metrics-addr", "", "serve /metrics on this address and wait for a signal")
	userID := flag.String("user", "demo_student", "session user id for the demo walk")
	flag.Parse()

	ctx := context.Background()

	app, cleanup, err := wire.InitializeApplication(ctx)
	if err != nil {
		log.Fatal("failed to initialize application", "err", err)
	}
	defer cleanup()

	session := common.Session{
		ID:       *userID,
		Name:     "Demo Student",
		Role:     common.RoleStudent,
		Semester: "3",
		Branch:   "Computer Science",
	}
	if err := walk(ctx, app, session); err != nil {
		app.Logger.Error("demo walk failed", "err", err)
	}

	if *metricsAddr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","service":"campusbuzz"}`))
	})

	server := &http.Server{
		Addr:              *metricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		app.Logger.Info("metrics server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Fatal("metrics server failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error("forced shutdown", "err", err)
	}
}

// walk opens every default room and the notification ledger once, which
// seeds a fresh profile the same way the UI does on first visit.
func walk(ctx context.Context, app *wire.Application, session common.Session) error {
	for _, room := range app.Chat.DefaultRooms(session) {
		view, err := app.Chat.OpenRoom(ctx, session, room.Type, room.Name)
		if err != nil {
			return err
		}
		app.Logger.Info("room", "key", room.Key, "messages", len(view.Messages))
	}

	unread, err := app.Notifications.UnreadCount(ctx, session.ID)
	if err != nil {
		return err
	}
	preview, err := app.Notifications.Preview(ctx, session.ID, 0)
	if err != nil {
		return err
	}
	app.Logger.Info("notifications", "unread", unread, "preview", len(preview))

	if mentor, err := app.Mentorship.Mentor(ctx, session); err == nil && mentor != nil {
		app.Logger.Info("mentor", "name", mentor.Name)
	}
	return nil
}
