package constants

// Deployment stages recognized by the service.
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
	StageTest  = "test"
)

// IsValidStage reports whether stage is one of the known deployment stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal, StageTest:
		return true
	}
	return false
}
