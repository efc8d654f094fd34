package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUpstreamUnavailable indicates a provider-side failure (5xx, timeout,
// transport error) from the upstream rate API. Client-class provider failures
// (bad id, unknown currency) map to ErrNotFound instead, because they are
// terminal for that specific lookup and must not be retried.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")
