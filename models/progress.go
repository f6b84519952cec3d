package models

// TransferProgress is reported by the transport while bytes move.
type TransferProgress struct {
	// Status is a short word describing the transfer phase
	// ("Starting", "Downloading", "Uploading", "Completed", "Failed").
	Status           string
	BytesTransferred int64
	// TotalBytes is -1 when the size is unknown.
	TotalBytes       int64
}

// ProgressFunc receives transfer progress notifications.
type ProgressFunc func(TransferProgress)

// Report calls f with p when f is set.
func (f ProgressFunc) Report(p TransferProgress) {
	if f != nil {
		f(p)
	}
}
