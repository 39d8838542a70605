package digest

// Stage identifies a pipeline stage for progress reporting.
type Stage string

// Pipeline stages in execution order.
const (
	StageFetch     Stage = "fetch"
	StageExtract   Stage = "extract"
	StageSummarize Stage = "summarize"
	StageRender    Stage = "render"
	StageWrite     Stage = "write"
)

// Progress reports progress as the pipeline moves through its stages.
type Progress struct {
	Stage   Stage
	Message string
}

// ProgressFunc is called as pipeline stages start and finish.
// Progress is informational only and not part of any data contract.
type ProgressFunc func(Progress)
