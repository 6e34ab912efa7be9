package pg

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/tikket/tikket-server/pkg/registration"
)

// EventParticipantDao is a data access object that maps directly to the
// 'event_participants' table in PostgreSQL.
type EventParticipantDao struct {
	bun.BaseModel `bun:"table:event_participants,alias:ep"`
	ID            string    `bun:"id,pk,type:text"`
	EventID       string    `bun:"event_id,notnull,type:text"`
	UserID        string    `bun:"user_id,notnull,type:text"`
	IsRegistered  bool      `bun:"is_registered,notnull,default:true"`
	CreatedAt     time.Time `bun:"created_at,nullzero,default:current_timestamp"`
}

// NFTPassDao is a data access object that maps directly to the 'nft_passes'
// table in PostgreSQL.
type NFTPassDao struct {
	bun.BaseModel `bun:"table:nft_passes,alias:np"`
	ID            string    `bun:"id,pk,type:text"`
	EventID       string    `bun:"event_id,notnull,type:text"`
	UserID        string    `bun:"user_id,notnull,type:text"`
	MintTxHash    string    `bun:"mint_tx_hash,notnull,type:text"`
	TokenID       string    `bun:"token_id,notnull,type:text"`
	Claimed       bool      `bun:"claimed,notnull,default:false"`
	CreatedAt     time.Time `bun:"created_at,nullzero,default:current_timestamp"`
}

func toParticipantDao(p *registration.Participant) *EventParticipantDao {
	return &EventParticipantDao{
		ID:           p.ID,
		EventID:      p.EventID,
		UserID:       p.UserID,
		IsRegistered: p.IsRegistered,
		CreatedAt:    p.CreatedAt,
	}
}

func toParticipant(dao *EventParticipantDao) *registration.Participant {
	return &registration.Participant{
		ID:           dao.ID,
		EventID:      dao.EventID,
		UserID:       dao.UserID,
		IsRegistered: dao.IsRegistered,
		CreatedAt:    dao.CreatedAt,
	}
}

func toPassDao(p *registration.Pass) *NFTPassDao {
	return &NFTPassDao{
		ID:         p.ID,
		EventID:    p.EventID,
		UserID:     p.UserID,
		MintTxHash: p.MintTxHash,
		TokenID:    p.TokenID,
		Claimed:    p.Claimed,
		CreatedAt:  p.CreatedAt,
	}
}

func toPass(dao *NFTPassDao) *registration.Pass {
	return &registration.Pass{
		ID:         dao.ID,
		EventID:    dao.EventID,
		UserID:     dao.UserID,
		MintTxHash: dao.MintTxHash,
		TokenID:    dao.TokenID,
		Claimed:    dao.Claimed,
		CreatedAt:  dao.CreatedAt,
	}
}
