// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/models"
)

const defaultSampleInterval = time.Minute

// SampleWriter persists one observation of an input.
type SampleWriter interface {
	WriteInputSample(ctx context.Context, name string, value, timestamp any, at time.Time) error
}

type inputSampler struct {
	inputs   models.InputRegistry
	writer   SampleWriter
	interval time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewInputSampler creates a worker that writes the current value of every
// input to writer each interval. A non-positive interval defaults to one
// minute. Inputs that were never set are skipped.
func NewInputSampler(inputs models.InputRegistry, writer SampleWriter, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSampleInterval
	}
	return &inputSampler{
		inputs:   inputs,
		writer:   writer,
		interval: interval,
		logger:   logger,
	}
}

func (s *inputSampler) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case now := <-t.C:
				s.sample(jobCtx, now)
			}
		}
	}()
}

func (s *inputSampler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *inputSampler) sample(ctx context.Context, now time.Time) {
	names := make([]string, 0, len(s.inputs))
	for name := range s.inputs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, timestamp := s.inputs[name].Get()
		if value == nil {
			continue
		}
		if err := s.writer.WriteInputSample(ctx, name, value, timestamp, now); err != nil {
			s.logger.Err(err).Str("input", name).Msg("error writing input sample")
		}
	}
}
