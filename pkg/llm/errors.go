package llm

import "errors"

var (
	// ErrTransport tags failures to reach the generation backend: connection
	// errors, timeouts, non-2xx statuses and undecodable bodies.
	ErrTransport = errors.New("generation backend unreachable")

	// ErrEmptyGeneration is reported when the backend answered without any
	// usable text.
	ErrEmptyGeneration = errors.New("empty generation")

	// ErrEmptyDiff is the only error returned by Generator.
	ErrEmptyDiff = errors.New("diff cannot be empty")
)
