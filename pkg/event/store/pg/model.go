package pg

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/tikket/tikket-server/pkg/event"
)

// EventDao is a data access object that maps directly to the 'events' table in PostgreSQL.
type EventDao struct {
	bun.BaseModel     `bun:"table:events,alias:e"`
	ID                string    `bun:"id,pk,type:text"`
	OrganizerID       string    `bun:"organiser_id,notnull,type:text"`
	Title             string    `bun:"title,notnull,type:text"`
	Description       string    `bun:"description,notnull,type:text"`
	Location          *string   `bun:"location,type:text"`
	IsTokenGated      bool      `bun:"is_token_gated,notnull,default:false"`
	StartDate         time.Time `bun:"start_date,notnull"`
	EndDate           time.Time `bun:"end_date,notnull"`
	StartTime         time.Time `bun:"start_time,notnull"`
	EndTime           time.Time `bun:"end_time,notnull"`
	ParticipantsCount string    `bun:"participants_count,notnull,default:'0',type:text"`
	CreatedAt         time.Time `bun:"created_at,nullzero,default:current_timestamp"`
}

// toEventDao converts an event.Event to EventDao.
func toEventDao(evt *event.Event) *EventDao {
	dao := &EventDao{
		ID:                evt.ID,
		OrganizerID:       evt.OrganizerID,
		Title:             evt.Title,
		Description:       evt.Description,
		IsTokenGated:      evt.IsTokenGated,
		StartDate:         evt.StartDate,
		EndDate:           evt.EndDate,
		StartTime:         evt.StartTime,
		EndTime:           evt.EndTime,
		ParticipantsCount: evt.ParticipantsCount,
		CreatedAt:         evt.CreatedAt,
	}
	if evt.Location != "" {
		dao.Location = &evt.Location
	}
	return dao
}

// toEvent converts an EventDao to event.Event.
func toEvent(dao *EventDao) *event.Event {
	evt := &event.Event{
		ID:                dao.ID,
		OrganizerID:       dao.OrganizerID,
		Title:             dao.Title,
		Description:       dao.Description,
		IsTokenGated:      dao.IsTokenGated,
		StartDate:         dao.StartDate,
		EndDate:           dao.EndDate,
		StartTime:         dao.StartTime,
		EndTime:           dao.EndTime,
		ParticipantsCount: dao.ParticipantsCount,
		CreatedAt:         dao.CreatedAt,
	}
	if dao.Location != nil {
		evt.Location = *dao.Location
	}
	return evt
}
