package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationFailed любая неудача удалённой генерации
	ErrGenerationFailed = errors.New("generation failed")
	// ErrRateLimited генератор отказал по квоте (HTTP 429), частный случай ErrGenerationFailed
	ErrRateLimited = errors.New("generation rate limited")
	// ErrValidationDefect ответ разобрался как JSON, но не прошёл проверку формы
	ErrValidationDefect = errors.New("generated content failed validation")

	ErrInvalidArgument = errors.New("invalid argument")
	ErrProfileNotFound = errors.New("profile not found")
)

type GenerationErrorKind int

const (
	GenerationFailure GenerationErrorKind = iota
	GenerationRateLimited
	GenerationValidation
)

func (k GenerationErrorKind) String() string {
	switch k {
	case GenerationRateLimited:
		return "rate_limited"
	case GenerationValidation:
		return "validation_defect"
	default:
		return "generation_failure"
	}
}

// GenerationError ошибка генератора; errors.Is(err, ErrGenerationFailed) верно для любого вида
type GenerationError struct {
	Kind GenerationErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Is(target error) bool {
	switch target {
	case ErrGenerationFailed:
		return true
	case ErrRateLimited:
		return e.Kind == GenerationRateLimited
	case ErrValidationDefect:
		return e.Kind == GenerationValidation
	default:
		return false
	}
}

// WrapGenerationError оборачивает ошибку как общую неудачу генерации, уже типизированные не трогает
func WrapGenerationError(err error) error {
	if err == nil {
		return nil
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return err
	}
	return &GenerationError{Kind: GenerationFailure, Err: err}
}

func NewRateLimitedError(err error) error {
	return &GenerationError{Kind: GenerationRateLimited, Err: err}
}

func NewValidationDefect(format string, args ...any) error {
	return &GenerationError{Kind: GenerationValidation, Err: fmt.Errorf(format, args...)}
}

func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
