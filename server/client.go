package server

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
)

// ErrBadFrame is returned when a binary message is not a whole number of values.
var ErrBadFrame = errors.New("server: malformed frame")

// Client reads a binary permutation stream from a Server.
type Client struct {
	conn    *websocket.Conn
	pending []byte

	// Session is the id the server assigned.
	Session string
	// Seed is the seed of the session's generator; zero in shared mode.
	Seed uint64
	// Max is the inclusive bound of the values.
	Max uint64
}

// Dial opens a stream at rawURL, adding q to its query. The format is
// forced to binary.
func Dial(ctx context.Context, rawURL string, q Query) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	q.Format = FormatBinary
	v := u.Query()
	for k, vs := range q.Values() {
		v[k] = vs
	}
	u.RawQuery = v.Encode()

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (%s)", u, err, resp.Status)
		}
		return nil, err
	}

	c := &Client{
		conn:    conn,
		Session: resp.Header.Get(HeaderSession),
	}
	c.Seed, _ = strconv.ParseUint(resp.Header.Get(HeaderSeed), 10, 64)
	c.Max, _ = strconv.ParseUint(resp.Header.Get(HeaderMax), 10, 64)

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	origPingHandler := conn.PingHandler()
	conn.SetPingHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return origPingHandler(appData)
	})
	return c, nil
}

// Next returns the next value. It returns io.EOF once the server has sent
// the requested count and closed the stream.
func (c *Client) Next() (uint64, error) {
	for len(c.pending) == 0 {
		typ, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return 0, io.EOF
			}
			return 0, err
		}
		c.conn.SetReadDeadline(time.Now().Add(readTimeout))
		if typ != websocket.BinaryMessage {
			continue
		}
		if len(data)%8 != 0 {
			return 0, fmt.Errorf("%w: %d bytes", ErrBadFrame, len(data))
		}
		c.pending = data
	}
	v := binary.LittleEndian.Uint64(c.pending)
	c.pending = c.pending[8:]
	return v, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return c.conn.Close()
}
