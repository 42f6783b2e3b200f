package constants

// Stage names. Each has its own queue with independent concurrency,
// retry, and backoff settings.
const (
	StageExtract   = "extract"
	StagePersist   = "persist"
	StageSync      = "sync"
	StageImage     = "image_process"
	StageBroadcast = "status_broadcast"
)

// AllStages lists every queue the daemon runs a worker pool for.
var AllStages = []string{
	StageExtract,
	StagePersist,
	StageSync,
	StageImage,
	StageBroadcast,
}

// DefaultPlan is the stage sequence for a standard purchase-order document.
func DefaultPlan() []string {
	return []string{StageExtract, StagePersist, StageSync}
}

// ImagePlan prefixes image normalization for photographed documents.
func ImagePlan() []string {
	return []string{StageImage, StageExtract, StagePersist, StageSync}
}

func ValidStage(name string) bool {
	for _, s := range AllStages {
		if s == name {
			return true
		}
	}
	return false
}
