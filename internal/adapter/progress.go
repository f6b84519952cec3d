package adapter

import (
	"io"

	"github.com/MKhiriev/go-mod-manager/models"
)

// Transfer statuses reported through [models.ProgressFunc].
const (
	StatusStarting    = "Starting"
	StatusDownloading = "Downloading"
	StatusUploading   = "Uploading"
	StatusCompleted   = "Completed"
	StatusFailed      = "Failed"
)

// progressReader reports the running byte count of every Read.
type progressReader struct {
	r          io.Reader
	status     string
	total      int64
	done       int64
	onProgress models.ProgressFunc
}

func newProgressReader(r io.Reader, status string, total int64, onProgress models.ProgressFunc) *progressReader {
	return &progressReader{r: r, status: status, total: total, onProgress: onProgress}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.done += int64(n)
		p.report(p.status)
	}
	return n, err
}

func (p *progressReader) report(status string) {
	p.onProgress.Report(models.TransferProgress{
		Status:           status,
		BytesTransferred: p.done,
		TotalBytes:       p.total,
	})
}
