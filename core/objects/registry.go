// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package objects tracks how many instances of a family of objects are
// currently live. A Registry is created by the caller and handed to every
// constructor that should be counted.
package objects

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/juju/collections/set"
	"github.com/prometheus/client_golang/prometheus"
)

var liveObjectsDesc = prometheus.NewDesc(
	"dequelist_live_objects",
	"Number of live objects by kind.",
	[]string{"kind"},
	nil,
)

// Registry counts live objects. The zero value is not usable; use
// NewRegistry.
type Registry struct {
	mu    sync.Mutex
	live  map[string]set.Strings
	kinds map[string]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		live:  make(map[string]set.Strings),
		kinds: make(map[string]string),
	}
}

// Register counts a new live object of the given kind and returns the ID
// that releases it.
func (r *Registry) Register(kind string) string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()

	ids, ok := r.live[kind]
	if !ok {
		ids = set.NewStrings()
		r.live[kind] = ids
	}
	ids.Add(id)
	r.kinds[id] = kind
	return id
}

// Release stops counting the object with the given ID. Unknown or already
// released IDs are ignored.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind, ok := r.kinds[id]
	if !ok {
		return
	}
	delete(r.kinds, id)
	r.live[kind].Remove(id)
	if r.live[kind].IsEmpty() {
		delete(r.live, kind)
	}
}

// Count returns the number of live objects of every kind.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.kinds)
}

// CountByKind returns the number of live objects of one kind.
func (r *Registry) CountByKind(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live[kind].Size()
}

// Kinds returns the kinds that have live objects, sorted.
func (r *Registry) Kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]string, 0, len(r.live))
	for kind := range r.live {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Describe is part of the prometheus.Collector interface.
func (r *Registry) Describe(ch chan<- *prometheus.Desc) {
	ch <- liveObjectsDesc
}

// Collect is part of the prometheus.Collector interface.
func (r *Registry) Collect(ch chan<- prometheus.Metric) {
	for _, kind := range r.Kinds() {
		ch <- prometheus.MustNewConstMetric(
			liveObjectsDesc,
			prometheus.GaugeValue,
			float64(r.CountByKind(kind)),
			kind,
		)
	}
}
