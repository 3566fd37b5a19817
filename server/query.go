package server

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// ErrBadQuery is returned for a stream request with invalid parameters.
var ErrBadQuery = errors.New("server: bad query")

// Format selects the message encoding of a stream.
type Format string

// Stream formats
const (
	// FormatBinary sends binary messages of 8-byte little-endian values.
	FormatBinary Format = "binary"
	// FormatHex sends text messages of "value  position" lines.
	FormatHex Format = "hex"
)

// Query describes the stream a client asks for. In shared mode only Count
// and Format are honoured.
type Query struct {
	Max    uint64
	Seed   uint64
	Source string
	// Count is the number of values to send; 0 streams until the client leaves.
	Count  uint64
	Format Format

	hasSeed bool
}

// WithSeed returns q with the seed set explicitly.
func (q Query) WithSeed(seed uint64) Query {
	q.Seed = seed
	q.hasSeed = true
	return q
}

// HasSeed reports whether the seed was given rather than left to the server.
func (q Query) HasSeed() bool {
	return q.hasSeed
}

// Values encodes q as URL query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("max", strconv.FormatUint(q.Max, 10))
	if q.hasSeed {
		v.Set("seed", strconv.FormatUint(q.Seed, 10))
	}
	if q.Source != "" {
		v.Set("source", q.Source)
	}
	if q.Count != 0 {
		v.Set("count", strconv.FormatUint(q.Count, 10))
	}
	if q.Format != "" {
		v.Set("format", string(q.Format))
	}
	return v
}

// ParseQuery reads a Query from URL parameters. max defaults to 2^64-1 and
// numbers accept the 0x and 0 prefixes.
func ParseQuery(v url.Values) (Query, error) {
	q := Query{Max: ^uint64(0), Source: v.Get("source"), Format: FormatBinary}
	var err error
	if s := v.Get("max"); s != "" {
		if q.Max, err = strconv.ParseUint(s, 0, 64); err != nil {
			return Query{}, fmt.Errorf("%w: max: %v", ErrBadQuery, err)
		}
	}
	if s := v.Get("seed"); s != "" {
		if q.Seed, err = strconv.ParseUint(s, 0, 64); err != nil {
			return Query{}, fmt.Errorf("%w: seed: %v", ErrBadQuery, err)
		}
		q.hasSeed = true
	}
	if s := v.Get("count"); s != "" {
		if q.Count, err = strconv.ParseUint(s, 0, 64); err != nil {
			return Query{}, fmt.Errorf("%w: count: %v", ErrBadQuery, err)
		}
	}
	switch f := Format(v.Get("format")); f {
	case "":
	case FormatBinary, FormatHex:
		q.Format = f
	default:
		return Query{}, fmt.Errorf("%w: format %q", ErrBadQuery, f)
	}
	return q, nil
}
