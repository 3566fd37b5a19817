// Package server streams permutations to websocket clients.
//
// Each session builds its own generator from the request's query, or, when
// the server runs with a shared generator, takes disjoint slices of one
// sequence. Prometheus metrics are served next to the stream endpoint on
// /metrics.
package server

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/tutils/tperm/entropy"
	"github.com/tutils/tperm/perm"
	"github.com/tutils/tperm/stream"
)

// Response headers set on the websocket handshake.
const (
	HeaderSession = "X-Tperm-Session"
	HeaderSeed    = "X-Tperm-Seed"
	HeaderMax     = "X-Tperm-Max"
)

// MetricsPath is where the prometheus handler is mounted.
const MetricsPath = "/metrics"

type addr struct {
	url *url.URL
}

func (a *addr) String() string {
	return a.url.String()
}

func (a *addr) host() string {
	return a.url.Host
}

func (a *addr) uri() string {
	return a.url.RequestURI()
}

func newAddr(rawURL string) (*addr, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	return &addr{url: u}, nil
}

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second * 10

// Server is a websocket permutation stream server.
type Server struct {
	opts    Options
	addr    *addr
	mux     *http.ServeMux
	srv     *http.Server
	metrics *metrics
}

// New creates a Server. The listen address is a ws:// URL whose path is the
// stream endpoint.
func New(opts ...Option) (*Server, error) {
	opt := newOptions(opts...)
	a, err := newAddr(opt.addr)
	if err != nil {
		return nil, err
	}

	s := &Server{
		opts:    *opt,
		addr:    a,
		mux:     http.NewServeMux(),
		metrics: newMetrics(),
	}
	s.mux.Handle(a.uri(), s)
	s.mux.Handle(MetricsPath, s.metrics.handler())
	s.srv = &http.Server{
		Addr:    a.host(),
		Handler: s.mux,
	}
	return s, nil
}

// Handler returns the server's routes, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr.String()
}

// ListenAndServe serves until Shutdown is called.
func (s *Server) ListenAndServe() error {
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting sessions and waits for handlers to return.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

type session struct {
	id     string
	query  Query
	g      *perm.Generator
	logger logrus.FieldLogger
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, err := ParseQuery(r.URL.Query())
	if err != nil {
		s.metrics.badRequests.Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := uuid.New()
	sess := &session{id: id.String(), query: q}
	if s.opts.shared == nil {
		if !q.HasSeed() {
			// no seed asked for: derive one from the session id
			q = q.WithSeed(binary.LittleEndian.Uint64(id[:8]))
			sess.query = q
		}
		src, err := entropy.New(q.Source, q.Seed)
		if err != nil {
			s.metrics.badRequests.Inc()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		sess.g = perm.New(q.Max, perm.WithSource(src))
	}

	header := http.Header{}
	header.Set(HeaderSession, sess.id)
	if sess.g != nil {
		header.Set(HeaderSeed, strconv.FormatUint(q.Seed, 10))
		header.Set(HeaderMax, strconv.FormatUint(q.Max, 10))
	} else {
		header.Set(HeaderMax, strconv.FormatUint(s.opts.shared.Max(), 10))
	}
	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		return
	}
	defer conn.Close()

	sess.logger = s.opts.logger.WithFields(logrus.Fields{
		"session": sess.id,
		"remote":  r.RemoteAddr,
	})
	sess.logger.WithFields(logrus.Fields{
		"max":    q.Max,
		"count":  q.Count,
		"format": q.Format,
		"shared": s.opts.shared != nil,
	}).Info("session started")

	s.metrics.sessions.Inc()
	s.metrics.active.Inc()
	defer s.metrics.active.Dec()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go readLoop(conn, cancel)

	done := make(chan struct{})
	go startPing(conn, done)
	reason := s.serveSession(ctx, conn, sess)
	close(done)

	s.metrics.sessionsDone.WithLabelValues(reason).Inc()
	sess.logger.WithField("reason", reason).Info("session finished")
}

// serveSession writes batches until the count is reached, the client goes
// away or a write fails, and returns which of those happened.
func (s *Server) serveSession(ctx context.Context, conn *websocket.Conn, sess *session) string {
	var (
		sent  uint64
		batch = make([]uint64, 0, s.opts.batch)
		buf   = &bytes.Buffer{}
	)
	for sess.query.Count == 0 || sent < sess.query.Count {
		select {
		case <-ctx.Done():
			return "client"
		default:
		}

		n := s.opts.batch
		if left := sess.query.Count - sent; sess.query.Count != 0 && left < uint64(n) {
			n = int(left)
		}
		batch = s.nextBatch(batch[:0], sess, n)

		buf.Reset()
		typ, err := encodeBatch(buf, batch, sess.query.Format, s.undoer(sess))
		if err != nil {
			sess.logger.WithError(err).Debug("encode failed")
			return "write"
		}

		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(typ, buf.Bytes()); err != nil {
			sess.logger.WithError(err).Debug("write failed")
			return "write"
		}
		sent += uint64(len(batch))
		s.metrics.values.Add(float64(len(batch)))
		if s.opts.valueCounter != nil {
			s.opts.valueCounter.Add(int64(len(batch)))
		}
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done")
	conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeTimeout))
	return "done"
}

// encodeBatch writes batch to w in format f and returns the websocket
// message type it must be sent as.
func encodeBatch(w io.Writer, batch []uint64, f Format, u stream.Undoer) (int, error) {
	if f == FormatHex {
		enc := stream.NewHexEncoder(w, u)
		for _, v := range batch {
			if err := enc.Encode(v); err != nil {
				return 0, err
			}
		}
		return websocket.TextMessage, enc.Flush()
	}

	var word [8]byte
	for _, v := range batch {
		binary.LittleEndian.PutUint64(word[:], v)
		if _, err := w.Write(word[:]); err != nil {
			return 0, err
		}
	}
	return websocket.BinaryMessage, nil
}

func (s *Server) nextBatch(dst []uint64, sess *session, n int) []uint64 {
	if sess.g == nil {
		return s.opts.shared.NextN(dst, n)
	}
	for i := 0; i < n; i++ {
		dst = append(dst, sess.g.Next())
	}
	return dst
}

func (s *Server) undoer(sess *session) stream.Undoer {
	if sess.g == nil {
		return s.opts.shared
	}
	return sess.g
}

// readLoop drains incoming frames so control messages get handled, and
// cancels the session once the connection is gone.
func readLoop(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(time.Second))
		case <-done:
			return
		}
	}
}
