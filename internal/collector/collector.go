// Package collector contains the background submissions re-measurement worker.
// It stands in for the external process which refreshes views, rewards and statuses.
package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/go-api/health"

	"github.com/postmint-net/midas/internal/service"
)

var log = logrus.WithField("package", "collector")

// Collector periodically re-measures submissions through the analyzer.
type Collector interface {
	health.Pinger

	Run(ctx context.Context) error
}

type collector struct {
	s        service.Service
	interval time.Duration

	mu      sync.Mutex
	lastRun time.Time
}

// New creates new instance of collector.
func New(s service.Service, interval time.Duration) Collector {
	return &collector{
		s:        s,
		interval: interval,
	}
}

func (c *collector) Run(ctx context.Context) error {
	t := time.NewTicker(c.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := c.s.MeasureSubmissions(ctx); err != nil {
				log.WithError(err).Error("failed to measure submissions")
				continue
			}

			c.mu.Lock()
			c.lastRun = time.Now()
			c.mu.Unlock()
		}
	}
}

func (c *collector) Ping(_ context.Context) (interface{}, error) {
	c.mu.Lock()
	last := c.lastRun
	c.mu.Unlock()

	if last.IsZero() { // no cycle completed yet
		return nil, nil
	}

	if time.Since(last) > 3*c.interval {
		return nil, fmt.Errorf("last successful run was at %s", last)
	}

	return map[string]interface{}{"lastRun": last}, nil
}

func (c *collector) Name() string {
	return "collector"
}
