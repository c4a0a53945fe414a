package phenor

import "errors"

var (
	// ErrUnknownModel indicates a model name absent from the catalog.
	ErrUnknownModel = errors.New("phenor: unknown model")

	// ErrParameterArity indicates a parameter vector whose length does not
	// match the model's fixed arity.
	ErrParameterArity = errors.New("phenor: parameter vector arity mismatch")

	// ErrMissingDriver indicates a required driver series absent from the
	// forcing set.
	ErrMissingDriver = errors.New("phenor: required driver series absent")

	// ErrDegenerate indicates a parameter draw that would divide by zero or
	// otherwise corrupt a response curve (e.g. a triangular response with
	// topt == tmin). Surfaced before any per-site work so external samplers
	// probing invalid corners never receive NaN results.
	ErrDegenerate = errors.New("phenor: degenerate parameter set")
)
