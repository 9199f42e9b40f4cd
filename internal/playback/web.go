package playback

import (
	_ "embed"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
)

//go:embed index.html
var indexHTML []byte

// ErrNoListeners is returned when no browser page is connected.
var ErrNoListeners = errors.New("no browser connected")

const dataURIPrefix = "data:audio/wav;base64,"

// DataURI renders a WAV payload as an inline data URI for an <audio> element.
func DataURI(payload []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(payload)
}

// WebSink pushes payloads to connected browser pages as server-sent events.
// Each page plays them through an autoplaying <audio> element.
type WebSink struct {
	mu      sync.RWMutex
	clients map[*webClient]struct{}
	log     *slog.Logger
}

type webClient struct {
	C    chan string
	done chan struct{}
}

// NewWebSink creates a sink with no connected pages.
func NewWebSink(logger *slog.Logger) *WebSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSink{
		clients: make(map[*webClient]struct{}),
		log:     logger,
	}
}

// Play fans the payload out to every page. Pages that are not keeping up
// miss the note rather than blocking the caller.
func (w *WebSink) Play(payload []byte) error {
	uri := DataURI(payload)

	w.mu.RLock()
	defer w.mu.RUnlock()
	if len(w.clients) == 0 {
		return ErrNoListeners
	}
	for c := range w.clients {
		select {
		case c.C <- uri:
		default:
			w.log.Debug("web client too slow, note dropped")
		}
	}
	return nil
}

// ListenerCount returns the number of connected pages.
func (w *WebSink) ListenerCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.clients)
}

func (w *WebSink) subscribe() *webClient {
	c := &webClient{
		C:    make(chan string, 16),
		done: make(chan struct{}),
	}
	w.mu.Lock()
	w.clients[c] = struct{}{}
	w.mu.Unlock()
	return c
}

func (w *WebSink) unsubscribe(c *webClient) {
	w.mu.Lock()
	if _, ok := w.clients[c]; ok {
		delete(w.clients, c)
		close(c.done)
	}
	w.mu.Unlock()
}

// Close disconnects every page.
func (w *WebSink) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for c := range w.clients {
		delete(w.clients, c)
		close(c.done)
	}
	return nil
}

// Handler serves the player page at / and the event stream at /events.
func (w *WebSink) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(rw, r)
			return
		}
		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		rw.Write(indexHTML)
	})
	mux.HandleFunc("/events", w.serveEvents)
	return mux
}

func (w *WebSink) serveEvents(rw http.ResponseWriter, r *http.Request) {
	flusher, ok := rw.(http.Flusher)
	if !ok {
		http.Error(rw, "streaming not supported", http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "text/event-stream")
	rw.Header().Set("Cache-Control", "no-cache, no-store")
	rw.Header().Set("Connection", "keep-alive")
	rw.WriteHeader(http.StatusOK)
	flusher.Flush()

	c := w.subscribe()
	defer w.unsubscribe(c)

	w.log.Info("web listener connected", "total", w.ListenerCount())
	defer w.log.Info("web listener disconnected")

	for {
		select {
		case <-r.Context().Done():
			return
		case <-c.done:
			return
		case uri := <-c.C:
			if _, err := fmt.Fprintf(rw, "event: note\ndata: %s\n\n", uri); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
