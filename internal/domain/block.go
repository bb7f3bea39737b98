package domain

import (
	"time"

	"github.com/ottoncsilva/fluxo-mobili-sub002/pkg/types"
)

// AgendaBlock is a manually blocked window of agenda time (team meeting,
// supplier visit, maintenance). Blocks take part in conflict checks exactly
// like appointments.
type AgendaBlock struct {
	ID        int64
	PublicID  string // UUID, the interval SourceID
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    string
	CreatedAt time.Time
}

// Interval normalizes the block into the conflict-check shape.
func (b *AgendaBlock) Interval() (Interval, error) {
	start, err := b.StartTime.OnDate(b.Date)
	if err != nil {
		return Interval{}, err
	}
	end, err := b.EndTime.OnDate(b.Date)
	if err != nil {
		return Interval{}, err
	}
	interval := Interval{
		Start:    start,
		End:      end,
		SourceID: b.PublicID,
		Source:   SourceBlock,
	}
	if err := interval.Validate(); err != nil {
		return Interval{}, err
	}
	return interval, nil
}
