// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-io-gate/internal/logger"
	"github.com/MKhiriev/go-io-gate/models"
)

type ioService struct {
	inputs    models.InputRegistry
	outputs   models.OutputRegistry
	observers []OutputObserver

	logger *logger.Logger
}

// NewIOService returns an IOService over the given registries. Observers are
// called in order after every successful write.
func NewIOService(inputs models.InputRegistry, outputs models.OutputRegistry, logger *logger.Logger, observers ...OutputObserver) IOService {
	return &ioService{
		inputs:    inputs,
		outputs:   outputs,
		observers: observers,
		logger:    logger,
	}
}

func (s *ioService) ReadInput(ctx context.Context, name string) (string, error) {
	input, ok := s.inputs.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInputNotFound, name)
	}
	if input.ConvertFunc == nil {
		return "", fmt.Errorf("%w: input %q", ErrUnresolvedConverter, name)
	}

	value, timestamp := input.Get()
	body, err := convertInput(input.ConvertFunc, value, timestamp)
	if err != nil {
		s.logger.Err(err).Str("input", name).Msg("error converting input value")
		return "", err
	}

	if err = ctx.Err(); err != nil {
		return "", err
	}
	return body, nil
}

func (s *ioService) LookupOutput(_ context.Context, name string) error {
	if _, ok := s.outputs.Lookup(name); !ok {
		return fmt.Errorf("%w: %q", ErrOutputNotFound, name)
	}
	return nil
}

func (s *ioService) WriteOutput(ctx context.Context, name, body string) error {
	output, ok := s.outputs.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrOutputNotFound, name)
	}

	if output.ConvertFunc == nil {
		return fmt.Errorf("%w: output %q", ErrUnresolvedConverter, name)
	}

	value, err := convertOutput(output.ConvertFunc, body)
	if err != nil {
		s.logger.Err(err).Str("output", name).Msg("error converting request body")
		return err
	}

	// a caller that gave up must not see its value land afterwards
	if err = ctx.Err(); err != nil {
		return err
	}
	output.Store(value)

	for _, observer := range s.observers {
		if err = observer.OutputWritten(ctx, name, value); err != nil {
			s.logger.Err(err).Str("output", name).Msg("output observer failed")
		}
	}

	return nil
}

func convertInput(convert models.InputConverter, value, timestamp any) (body string, err error) {
	defer func() {
		if r := recover(); r != nil {
			body, err = "", fmt.Errorf("%w: %v", ErrConverterPanic, r)
		}
	}()

	body, err = convert(value, timestamp)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputConversion, err)
	}
	return body, nil
}

func convertOutput(convert models.OutputConverter, body string) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value, err = nil, fmt.Errorf("%w: %v", ErrConverterPanic, r)
		}
	}()

	value, err = convert(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutputConversion, err)
	}
	return value, nil
}
