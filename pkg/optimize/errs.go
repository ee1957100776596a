package optimize

import "errors"

var (
	// ErrBadAlgorithm indicates an Algorithm value outside the supported set.
	ErrBadAlgorithm = errors.New("optimize: unknown algorithm")

	// ErrNoObjective indicates a run or experiment without an objective.
	ErrNoObjective = errors.New("optimize: nil objective")

	// ErrBadWindow indicates a decision window that is zero, negative, or
	// longer than the optimizable periods.
	ErrBadWindow = errors.New("optimize: bad decision window")

	// ErrBadInitial indicates a starting point whose length or values do
	// not fit the search bounds.
	ErrBadInitial = errors.New("optimize: initial point outside bounds")

	// ErrNoExperiments indicates an empty experiment batch.
	ErrNoExperiments = errors.New("optimize: no experiments")

	// ErrSharedObjective indicates two experiments bound to the same
	// objective. An objective owns a mutable model instance, so sharing
	// one across concurrent runs would race.
	ErrSharedObjective = errors.New("optimize: experiments share an objective")
)
