package spot

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Spot is a single bay inside a lot. Its status is only ever flipped through
// the conditional update in the registry, never in memory.
type Spot struct {
	id        uuid.UUID
	lotID     uuid.UUID
	number    string
	status    Status
	createdAt time.Time
}

func NewSpot(lotID uuid.UUID, number string, now time.Time) *Spot {
	return &Spot{
		id:        uuid.New(),
		lotID:     lotID,
		number:    number,
		status:    StatusAvailable,
		createdAt: now,
	}
}

func ReconstructSpot(id, lotID uuid.UUID, number string, status Status, createdAt time.Time) *Spot {
	return &Spot{
		id:        id,
		lotID:     lotID,
		number:    number,
		status:    status,
		createdAt: createdAt,
	}
}

func (s *Spot) ID() uuid.UUID        { return s.id }
func (s *Spot) LotID() uuid.UUID     { return s.lotID }
func (s *Spot) Number() string       { return s.number }
func (s *Spot) Status() Status       { return s.status }
func (s *Spot) CreatedAt() time.Time { return s.createdAt }

func (s *Spot) IsAvailable() bool {
	return s.status == StatusAvailable
}

// Number renders the human-readable label of the n-th spot of a lot, e.g. "Central-007".
func Number(lotName string, n int) string {
	return fmt.Sprintf("%s-%03d", lotName, n)
}

// Numbers returns the labels for spots from+1 through from+count.
func Numbers(lotName string, from, count int) []string {
	if count <= 0 {
		return nil
	}
	out := make([]string, 0, count)
	for i := from + 1; i <= from+count; i++ {
		out = append(out, Number(lotName, i))
	}
	return out
}

// NextNumbers returns count labels for lotName that are not in taken, filling
// gaps from the lowest index upward.
func NextNumbers(lotName string, taken []string, count int) []string {
	if count <= 0 {
		return nil
	}
	used := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		used[t] = struct{}{}
	}
	out := make([]string, 0, count)
	for i := 1; len(out) < count; i++ {
		n := Number(lotName, i)
		if _, ok := used[n]; ok {
			continue
		}
		out = append(out, n)
	}
	return out
}
