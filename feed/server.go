// Package feed publishes session snapshots over HTTP, as JSON documents and
// as a server-sent event stream
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ayoisaiah/pointage/internal/board"
	"github.com/ayoisaiah/pointage/internal/models"
	"github.com/ayoisaiah/pointage/internal/refresh"
)

const (
	defaultPerPage    = 20
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

var (
	errBadPerPage = errors.New("per_page must be a positive integer")
	errNoSnapshot = errors.New("no snapshot available yet")
)

// Hub hands out snapshot subscriptions.
type Hub interface {
	Subscribe(sessionID string) *refresh.Subscription
}

// Response is the JSON view of a snapshot.
type Response struct {
	RefreshedAt   time.Time                  `json:"refreshed_at"`
	SessionID     string                     `json:"session_id"`
	Error         string                     `json:"error,omitempty"`
	Segments      [][]models.Listed          `json:"segments"`
	Notifications []models.NotificationEvent `json:"notifications,omitempty"`
	Session       models.Session             `json:"session"`
	Counts        models.Counts              `json:"counts"`
	Stale         bool                       `json:"stale"`
}

// NewResponse splits the listing of snap into segments of perPage members.
func NewResponse(snap *models.Snapshot, perPage int) Response {
	segments := board.Paginate(snap.Listed, perPage)
	if segments == nil {
		segments = [][]models.Listed{}
	}

	return Response{
		SessionID:     snap.SessionID,
		RefreshedAt:   snap.RefreshedAt,
		Error:         snap.Error,
		Segments:      segments,
		Notifications: snap.Notifications,
		Session:       snap.Session,
		Counts:        snap.Counts,
		Stale:         snap.Stale,
	}
}

// Server serves the snapshots of the sessions known to a hub.
type Server struct {
	hub Hub

	// Wait bounds how long a one-shot request waits for a first snapshot
	Wait time.Duration
}

// New returns a server backed by hub.
func New(hub Hub) *Server {
	return &Server{
		hub:  hub,
		Wait: 30 * time.Second,
	}
}

type errorHandler func(w http.ResponseWriter, r *http.Request) error

type statusError struct {
	err    error
	status int
}

func (e *statusError) Error() string {
	return e.err.Error()
}

func (e *statusError) Unwrap() error {
	return e.err
}

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err == nil {
		return
	}

	status := http.StatusInternalServerError

	var se *statusError
	if errors.As(err, &se) {
		status = se.status
	}

	slog.Warn(
		"request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	)

	http.Error(w, err.Error(), status)
}

// Handler returns the routes of the feed.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /sessions/{id}", errorHandler(s.Snapshot))
	mux.Handle("GET /sessions/{id}/events", errorHandler(s.Events))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok\n"))
	})

	return mux
}

// Snapshot responds with the latest snapshot of a session, waiting for the
// first refresh cycle if none is available yet.
func (s *Server) Snapshot(w http.ResponseWriter, r *http.Request) error {
	perPage, err := perPageParam(r)
	if err != nil {
		return err
	}

	sub := s.hub.Subscribe(r.PathValue("id"))
	defer sub.Unsubscribe()

	ctx, cancel := context.WithTimeout(r.Context(), s.Wait)
	defer cancel()

	select {
	case snap, ok := <-sub.Updates():
		if !ok {
			return &statusError{err: errNoSnapshot, status: http.StatusServiceUnavailable}
		}

		w.Header().Set("Content-Type", "application/json")

		return json.NewEncoder(w).Encode(NewResponse(&snap, perPage))
	case <-ctx.Done():
		return &statusError{err: errNoSnapshot, status: http.StatusGatewayTimeout}
	}
}

// Events streams every snapshot of a session until the client goes away.
func (s *Server) Events(w http.ResponseWriter, r *http.Request) error {
	perPage, err := perPageParam(r)
	if err != nil {
		return err
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		return errors.New("streaming is not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := s.hub.Subscribe(r.PathValue("id"))
	defer sub.Unsubscribe()

	stream(r.Context(), w, flusher, sub.Updates(), perPage)

	return nil
}

// stream writes one event per snapshot until ctx is done or updates is
// closed. The response status is already sent, so failures are logged
// rather than returned.
func stream(
	ctx context.Context,
	w http.ResponseWriter,
	flusher http.Flusher,
	updates <-chan models.Snapshot,
	perPage int,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-updates:
			if !ok {
				return
			}

			b, err := json.Marshal(NewResponse(&snap, perPage))
			if err != nil {
				slog.Warn(
					"skipping unencodable snapshot",
					slog.String("session", snap.SessionID),
					slog.Any("error", err),
				)

				continue
			}

			if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", b); err != nil {
				return
			}

			flusher.Flush()
		}
	}
}

// ListenAndServe serves the feed on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func perPageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("per_page")
	if raw == "" {
		return defaultPerPage, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &statusError{err: errBadPerPage, status: http.StatusBadRequest}
	}

	return n, nil
}
