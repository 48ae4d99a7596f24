// Package metrics counts rewrite activity with Prometheus collectors.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the rewrite counters. A nil *Collector records nothing.
type Collector struct {
	registry *prometheus.Registry
	urls     *prometheus.CounterVec
	messages *prometheus.CounterVec
}

// NewCollector constructs a collector with its own registry.
func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	urls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "embedfix",
		Subsystem: "rewrite",
		Name:      "urls_total",
		Help:      "URL candidates seen, by matching site and outcome.",
	}, []string{"site", "outcome"})

	messages := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "embedfix",
		Subsystem: "rewrite",
		Name:      "messages_total",
		Help:      "Messages passed through a hook, by hook and whether the content changed.",
	}, []string{"hook", "changed"})

	if err := registry.Register(urls); err != nil {
		return nil, err
	}
	if err := registry.Register(messages); err != nil {
		return nil, err
	}

	return &Collector{registry: registry, urls: urls, messages: messages}, nil
}

// Gatherer exposes the collector's registry.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// ObserveURL records one URL candidate. site is empty when no rule matched.
func (c *Collector) ObserveURL(site, outcome string) {
	if c == nil {
		return
	}
	if site == "" {
		site = "none"
	}
	c.urls.WithLabelValues(site, outcome).Inc()
}

// ObserveMessage records one message passing through hook.
func (c *Collector) ObserveMessage(hook string, changed bool) {
	if c == nil {
		return
	}
	c.messages.WithLabelValues(hook, strconv.FormatBool(changed)).Inc()
}

// WriteFile writes the current values in the Prometheus text format.
func (c *Collector) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
