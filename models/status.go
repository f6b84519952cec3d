package models

// InstallState is the stage a pipeline run is in.
type InstallState string

const (
	// InstallStateIdle means no operation is in flight.
	InstallStateIdle InstallState = "Idle"

	// InstallStateDownloading means the payload is being fetched.
	InstallStateDownloading InstallState = "Downloading"

	// InstallStateInstalling means the downloaded payload is being installed.
	InstallStateInstalling InstallState = "Installing"

	// InstallStateCleaningUp means the temporary artifact is being deleted.
	InstallStateCleaningUp InstallState = "CleaningUp"

	// InstallStateRemoving means the files of an installed item are being deleted.
	InstallStateRemoving InstallState = "Removing"

	// InstallStateUploading means an asset is being sent to the store.
	InstallStateUploading InstallState = "Uploading"

	// InstallStateDone means the last operation finished successfully.
	InstallStateDone InstallState = "Done"

	// InstallStateFailed means the last operation stopped with an error.
	InstallStateFailed InstallState = "Failed"
)

// String returns the string representation of InstallState.
func (s InstallState) String() string {
	return string(s)
}

// IsActive returns true while an operation is in flight.
func (s InstallState) IsActive() bool {
	switch s {
	case InstallStateDownloading, InstallStateInstalling, InstallStateCleaningUp,
		InstallStateRemoving, InstallStateUploading:
		return true
	}
	return false
}

// IsFinished returns true for terminal states.
func (s InstallState) IsFinished() bool {
	return s == InstallStateDone || s == InstallStateFailed
}

// Operations that publish status updates.
const (
	OperationInstall = "install"
	OperationRemove  = "remove"
	OperationUpload  = "upload"
	OperationCatalog = "catalog"
)

// StatusUpdate is published to observers whenever a pipeline changes state
// or reports progress.
type StatusUpdate struct {
	// Operation names the pipeline that published the update.
	Operation string
	State     InstallState
	Message   string
	Busy      bool
}

// StatusListener receives status updates published by a pipeline. It is
// always called without any pipeline lock held.
type StatusListener func(update StatusUpdate)
