/*

Package statsd provides a client that sends statsd metrics as individual UDP
datagrams to a metrics daemon.

Delivery is best-effort by design: each recording call performs at most one
blocking send on a socket connected at construction time, and any failure along
the way is routed to an optional ErrorListener instead of being returned. A
dropped datagram is simply dropped; there is no batching, retrying, or
reconnecting.

Example

The following would report a counter to a statsd daemon listening on port 8125,
tagged with the configured constant tags plus one call-site tag:

	client, err := statsd.NewClient(statsd.Config{
		Endpoint: "statsd:8125",
		Prefix:   "app",
		Tags:     []string{"env:prod"},
	})

	client.Incr("hits", []string{"region:us"}, 1)
	client.Stop()

*/
package statsd
