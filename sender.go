package statsd

import (
	"errors"
	"fmt"
	"math/rand"
	"net"
	"sync"
)

type ErrorListener func(err error)

type Config struct {
	// Endpoint is the host:port of the statsd daemon. Required.
	Endpoint string
	// Prefix, when non-empty, is prepended to every metric name with a
	// trailing dot.
	Prefix string
	// Tags are constant tags included on every metric, ahead of any
	// call-site tags.
	Tags []string
	// ErrorListener receives connection and shutdown errors. When nil,
	// errors are silently dropped.
	ErrorListener
}

// Client records metric values against named aspects. Recording methods never
// fail from the caller's perspective; rate selects the sample rate in (0,1],
// where 1 sends every call.
type Client interface {
	Count(name string, delta int64, tags []string, rate float64)
	Incr(name string, tags []string, rate float64)
	Decr(name string, tags []string, rate float64)
	Gauge(name string, value int64, tags []string, rate float64)
	FGauge(name string, value float64, tags []string, rate float64)
	Timing(name string, timeInMs int64, tags []string, rate float64)
	Histogram(name string, value int64, tags []string, rate float64)
	FHistogram(name string, value float64, tags []string, rate float64)
	Stop()
}

// NewClient connects a datagram socket to the configured endpoint. Unlike the
// recording methods, a failure here is returned: an unusable client is worse
// than a silently degraded one.
func NewClient(config Config) (Client, error) {
	if config.Endpoint == "" {
		return nil, errors.New("endpoint is required")
	}
	conn, err := net.Dial("udp", config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	prefix := config.Prefix
	if prefix != "" {
		prefix = prefix + "."
	}
	return &clientImpl{
		config: config,
		prefix: prefix,
		conn:   conn,
		random: rand.Float64,
	}, nil
}

type clientImpl struct {
	config   Config
	prefix   string
	conn     net.Conn
	random   func() float64
	stopSync sync.Once
}

func (c *clientImpl) Count(name string, delta int64, tags []string, rate float64) {
	c.send(name, formatInt(delta), typeCounter, tags, rate)
}

func (c *clientImpl) Incr(name string, tags []string, rate float64) {
	c.Count(name, 1, tags, rate)
}

func (c *clientImpl) Decr(name string, tags []string, rate float64) {
	c.Count(name, -1, tags, rate)
}

func (c *clientImpl) Gauge(name string, value int64, tags []string, rate float64) {
	c.send(name, formatInt(value), typeGauge, tags, rate)
}

func (c *clientImpl) FGauge(name string, value float64, tags []string, rate float64) {
	c.send(name, formatFloat(value), typeGauge, tags, rate)
}

func (c *clientImpl) Timing(name string, timeInMs int64, tags []string, rate float64) {
	c.send(name, formatInt(timeInMs), typeTimer, tags, rate)
}

func (c *clientImpl) Histogram(name string, value int64, tags []string, rate float64) {
	c.send(name, formatInt(value), typeHistogram, tags, rate)
}

func (c *clientImpl) FHistogram(name string, value float64, tags []string, rate float64) {
	c.send(name, formatFloat(value), typeHistogram, tags, rate)
}

// Stop releases the socket. The release happens at most once; calling Stop
// again is a no-op, and recording after Stop routes the resulting write error
// to the ErrorListener like any other send failure.
func (c *clientImpl) Stop() {
	c.stopSync.Do(func() {
		if err := c.conn.Close(); err != nil {
			c.reportError(fmt.Errorf("failed to close: %w", err))
		}
	})
}

// send makes the per-call sampling decision, encodes the line, and attempts
// exactly one datagram write. Failures go to the listener; the caller's
// control flow is never interrupted.
func (c *clientImpl) send(name, value, typeCode string, tags []string, rate float64) {
	if !sample(rate, c.random) {
		return
	}
	line := formatLine(c.prefix, name, value, typeCode, rate, tagSuffix(c.config.Tags, tags))
	if _, err := c.conn.Write([]byte(line)); err != nil {
		c.reportError(fmt.Errorf("failed to send: %w", err))
	}
}

func (c *clientImpl) reportError(err error) {
	if c.config.ErrorListener != nil {
		c.config.ErrorListener(err)
	}
}
