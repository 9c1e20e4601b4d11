package engine

import "errors"

// Failure taxonomy for a pipeline run. Stages wrap these sentinels with
// fmt.Errorf("%w: ...") so callers can branch with errors.Is while still
// seeing the underlying diagnostic text.
var (
	// ErrToolNotFound means the engine executable is missing from the
	// execution environment. Actionable: install or configure the engine.
	ErrToolNotFound = errors.New("analysis engine executable not found")

	// ErrGenerationFailed means the engine ran but did not produce an AST
	// dump (non-zero exit, timeout, unexpected stdio). Actionable: inspect
	// the source input.
	ErrGenerationFailed = errors.New("ast generation failed")

	// ErrParseFailed means the generated XML did not conform to a
	// parseable tree.
	ErrParseFailed = errors.New("ast xml parse failed")

	// ErrUnsupportedEngine means no strategy is registered under the
	// requested engine name. Actionable: pick a different engine.
	ErrUnsupportedEngine = errors.New("engine is not supported")
)
