package jobs

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"parking-core/internal/domain/billing"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

const exportTimeLayout = "2006-01-02 15:04:05"

var exportHeader = []string{
	"Reservation ID",
	"Parking Lot",
	"Spot Number",
	"Vehicle Number",
	"Start Time",
	"End Time",
	"Duration (Hours)",
	"Cost",
	"Status",
	"Created",
}

// ExportRequest scopes an export. A nil UserID exports every user's rows.
type ExportRequest struct {
	RequestedBy uuid.UUID
	UserID      *uuid.UUID
	From        *time.Time
	To          *time.Time
}

type ExportArgs struct {
	Filename    string     `json:"filename"`
	RequestedBy uuid.UUID  `json:"requested_by"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
}

// ExportFile is a finished export on disk.
type ExportFile struct {
	Filename   string
	Size       int64
	ModifiedAt time.Time
}

func (ExportArgs) Kind() string { return "export_reservations" }

type ExportWorker struct {
	river.WorkerDefaults[ExportArgs]
	reservations queries.ReservationQueries
	dir          string
}

func NewExportWorker(reservations queries.ReservationQueries, dir string) *ExportWorker {
	return &ExportWorker{reservations: reservations, dir: dir}
}

func (w *ExportWorker) Work(ctx context.Context, job *river.Job[ExportArgs]) (err error) {
	defer observe(job.Kind, &err)
	return w.Export(ctx, job.Args)
}

// Export writes to a temporary file and renames it, so a download never sees
// a partial CSV.
func (w *ExportWorker) Export(ctx context.Context, args ExportArgs) error {
	path, err := ExportPath(w.dir, args.Filename)
	if err != nil {
		return err
	}

	rows, err := w.reservations.ForExport(ctx, queries.ExportFilter{
		UserID: args.UserID,
		From:   args.From,
		To:     args.To,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return errs.Wrap(err, "failed to create export dir")
	}
	tmp, err := os.CreateTemp(w.dir, args.Filename+".*.tmp")
	if err != nil {
		return errs.Wrap(err, "failed to create export file")
	}
	defer os.Remove(tmp.Name())

	if err := WriteCSV(tmp, rows); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrap(err, "failed to close export file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errs.Wrap(err, "failed to publish export file")
	}
	return nil
}

func WriteCSV(f io.Writer, rows []*queries.ExportRow) error {
	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return errs.Wrap(err, "failed to write export header")
	}
	for _, r := range rows {
		if err := w.Write(exportRecord(r)); err != nil {
			return errs.Wrap(err, "failed to write export row")
		}
	}
	w.Flush()
	return errs.Wrap(w.Error(), "failed to flush export")
}

func exportRecord(r *queries.ExportRow) []string {
	end, duration, cost := "", "", ""
	if r.EndTime != nil {
		end = r.EndTime.Format(exportTimeLayout)
		duration = billing.DurationHours(r.StartTime, *r.EndTime).StringFixed(2)
	}
	if r.Cost != nil {
		cost = r.Cost.StringFixed(2)
	}
	return []string{
		r.ID.String(),
		r.LotName,
		r.SpotNumber,
		r.VehicleNumber,
		r.StartTime.Format(exportTimeLayout),
		end,
		duration,
		cost,
		r.Status,
		r.CreatedAt.Format(exportTimeLayout),
	}
}

// ExportFilename is prefixed with the requester's id; that prefix is the
// ownership check for downloads. The millisecond stamp and random suffix keep
// two requests in the same second apart.
func ExportFilename(requestedBy uuid.UUID, at time.Time) string {
	at = at.UTC()
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_reservations_%s%03d_%s.csv",
		requestedBy, at.Format("20060102T150405"), at.Nanosecond()/int(time.Millisecond), suffix)
}

func OwnsExport(filename string, userID uuid.UUID) bool {
	return strings.HasPrefix(filename, userID.String()+"_")
}

// ExportPath rejects anything that is not a bare .csv file name.
func ExportPath(dir, filename string) (string, error) {
	if filename == "" || filepath.Base(filename) != filename || !strings.HasSuffix(filename, ".csv") {
		return "", errs.Newf("invalid export filename %q", filename)
	}
	return filepath.Join(dir, filename), nil
}

// ListExports returns finished exports, newest first. A missing dir is empty.
func ListExports(dir string) ([]ExportFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errs.Is(err, fs.ErrNotExist) {
			return []ExportFile{}, nil
		}
		return nil, errs.Wrap(err, "failed to read export dir")
	}

	files := make([]ExportFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, ExportFile{Filename: e.Name(), Size: info.Size(), ModifiedAt: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].ModifiedAt.Equal(files[j].ModifiedAt) {
			return files[i].Filename > files[j].Filename
		}
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})
	return files, nil
}
