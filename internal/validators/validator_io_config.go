package validators

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-io-gate/internal/converter"
	"github.com/MKhiriev/go-io-gate/models"
)

// Field names accepted by [IOConfigValidator.Validate] for a [models.IOConfig].
const (
	FieldEntries     = "entries"
	FieldInputs      = "inputs"
	FieldOutputs     = "outputs"
	FieldPort        = "port"
	FieldUniqueNames = "unique_names"
)

const maxPort = 65535

// IOConfigValidator validates and normalizes facade configurations.
//
// Validating a [models.IOConfig], a registry, a [models.Input] or a
// [models.Output] resolves converters in place: on success every entry's
// ConvertFunc holds the resolved converter and Convert is cleared, so
// validating twice is safe. Registry entries are checked in name order and
// must be registered under their own name.
type IOConfigValidator struct {
}

func NewIOConfigValidator() Validator {
	return &IOConfigValidator{}
}

// Validate checks obj, which is a [models.IOConfig], a registry or a single
// entry. For a config without fields, all checks run in their fixed order:
// entries present, input names and converters, output names and converters,
// port range, unique names. It stops at the first violation.
func (v *IOConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.IOConfig:
		return v.validateIOConfig(ctx, value, fields...)
	case models.InputRegistry:
		return v.validateInputRegistry(ctx, value)
	case models.OutputRegistry:
		return v.validateOutputRegistry(ctx, value)
	case *models.Input:
		return v.validateInput(ctx, 0, value)
	case *models.Output:
		return v.validateOutput(ctx, 0, value)
	default:
		return ErrUnsupportedType
	}
}

func (v *IOConfigValidator) validateIOConfig(ctx context.Context, cfg *models.IOConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntries, FieldInputs, FieldOutputs, FieldPort, FieldUniqueNames}
	}

	for _, f := range fields {
		switch f {
		case FieldEntries:
			if len(cfg.Inputs)+len(cfg.Outputs) == 0 {
				return ErrEmptyConfig
			}
		case FieldInputs:
			for i, input := range cfg.Inputs {
				if err := v.validateInput(ctx, i, input); err != nil {
					return err
				}
			}
		case FieldOutputs:
			for i, output := range cfg.Outputs {
				if err := v.validateOutput(ctx, i, output); err != nil {
					return err
				}
			}
		case FieldPort:
			if cfg.Port < 0 || cfg.Port > maxPort {
				return ErrInvalidPort
			}
		case FieldUniqueNames:
			if err := validateUniqueNames(cfg); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *IOConfigValidator) validateInput(_ context.Context, index int, input *models.Input) error {
	if input == nil || input.Name == "" {
		return &EntryError{Direction: models.DirectionInput, Index: index, Err: ErrMissingName}
	}

	convert, err := converter.ResolveInput(input.Convert, input.ConvertFunc)
	if err != nil {
		return &EntryError{Direction: models.DirectionInput, Index: index, Name: input.Name, Err: err}
	}

	input.ConvertFunc = convert
	input.Convert = ""
	return nil
}

func (v *IOConfigValidator) validateOutput(_ context.Context, index int, output *models.Output) error {
	if output == nil || output.Name == "" {
		return &EntryError{Direction: models.DirectionOutput, Index: index, Err: ErrMissingName}
	}

	convert, err := converter.ResolveOutput(output.Convert, output.ConvertFunc)
	if err != nil {
		return &EntryError{Direction: models.DirectionOutput, Index: index, Name: output.Name, Err: err}
	}

	output.ConvertFunc = convert
	output.Convert = ""
	return nil
}

func (v *IOConfigValidator) validateInputRegistry(ctx context.Context, inputs models.InputRegistry) error {
	for i, name := range sortedNames(inputs) {
		input := inputs[name]
		if err := v.validateInput(ctx, i, input); err != nil {
			return err
		}
		if input.Name != name {
			return &EntryError{Direction: models.DirectionInput, Index: i, Name: name, Err: ErrNameMismatch}
		}
	}
	return nil
}

func (v *IOConfigValidator) validateOutputRegistry(ctx context.Context, outputs models.OutputRegistry) error {
	for i, name := range sortedNames(outputs) {
		output := outputs[name]
		if err := v.validateOutput(ctx, i, output); err != nil {
			return err
		}
		if output.Name != name {
			return &EntryError{Direction: models.DirectionOutput, Index: i, Name: name, Err: ErrNameMismatch}
		}
	}
	return nil
}

func sortedNames[E any](registry map[string]E) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateUniqueNames(cfg *models.IOConfig) error {
	seenInputs := make(map[string]struct{}, len(cfg.Inputs))
	for i, input := range cfg.Inputs {
		if input == nil {
			continue
		}
		if _, ok := seenInputs[input.Name]; ok {
			return &EntryError{Direction: models.DirectionInput, Index: i, Name: input.Name, Err: ErrDuplicateName}
		}
		seenInputs[input.Name] = struct{}{}
	}

	seenOutputs := make(map[string]struct{}, len(cfg.Outputs))
	for i, output := range cfg.Outputs {
		if output == nil {
			continue
		}
		if _, ok := seenOutputs[output.Name]; ok {
			return &EntryError{Direction: models.DirectionOutput, Index: i, Name: output.Name, Err: ErrDuplicateName}
		}
		seenOutputs[output.Name] = struct{}{}
	}

	return nil
}
