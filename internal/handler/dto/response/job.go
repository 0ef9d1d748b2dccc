package response

import (
	"strconv"
	"time"

	"parking-core/internal/infra/jobs"
)

type ExportResponse struct {
	JobID       int64  `json:"job_id"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
	StatusURL   string `json:"status_url"`
}

type JobQueuedResponse struct {
	JobID     int64  `json:"job_id"`
	StatusURL string `json:"status_url"`
}

type JobResponse struct {
	ID          int64      `json:"id"`
	Kind        string     `json:"kind"`
	State       string     `json:"state"`
	Attempt     int        `json:"attempt"`
	MaxAttempts int        `json:"max_attempts"`
	Errors      []string   `json:"errors,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
	DownloadURL string     `json:"download_url,omitempty"`
}

type ReportFileResponse struct {
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	ModifiedAt  time.Time `json:"modified_at"`
	DownloadURL string    `json:"download_url"`
}

func JobStatusURL(id int64) string {
	return "/api/jobs/" + strconv.FormatInt(id, 10)
}

func ExportDownloadURL(filename string) string {
	return "/api/exports/" + filename
}

func FromEnqueuedExport(e *jobs.Enqueued) *ExportResponse {
	return &ExportResponse{
		JobID:       e.JobID,
		Filename:    e.Filename,
		DownloadURL: ExportDownloadURL(e.Filename),
		StatusURL:   JobStatusURL(e.JobID),
	}
}

// FromJobStatus links the download only once the export job has completed.
func FromJobStatus(s *jobs.JobStatus) *JobResponse {
	resp := &JobResponse{
		ID:          s.ID,
		Kind:        s.Kind,
		State:       s.State,
		Attempt:     s.Attempt,
		MaxAttempts: s.MaxAttempts,
		Errors:      s.Errors,
		CreatedAt:   s.CreatedAt,
		FinalizedAt: s.FinalizedAt,
	}
	if s.Filename != "" && s.State == "completed" {
		resp.DownloadURL = ExportDownloadURL(s.Filename)
	}
	return resp
}

func FromExportFiles(files []jobs.ExportFile) []*ReportFileResponse {
	out := make([]*ReportFileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, &ReportFileResponse{
			Filename:    f.Filename,
			Size:        f.Size,
			ModifiedAt:  f.ModifiedAt,
			DownloadURL: ExportDownloadURL(f.Filename),
		})
	}
	return out
}
