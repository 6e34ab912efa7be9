package tikketdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/tikket/tikket-server/pkg/pgutil/migrations"
	registrationpg "github.com/tikket/tikket-server/pkg/registration/store/pg"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating event_participants table...")
		if err := mghelper.CreateSchema(ctx, db, &registrationpg.EventParticipantDao{}); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			ALTER TABLE event_participants
			ADD CONSTRAINT fk_event_participants_event
			FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
		`); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			ALTER TABLE event_participants
			ADD CONSTRAINT fk_event_participants_user
			FOREIGN KEY (user_id) REFERENCES "user"(id) ON DELETE CASCADE
		`); err != nil {
			return err
		}
		// One registration per (event, user); the join workflow relies on this
		// to close the duplicate-registration race.
		_, err := db.ExecContext(ctx, `
			CREATE UNIQUE INDEX IF NOT EXISTS idx_event_participants_event_id_user_id
			ON event_participants (event_id, user_id)
		`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping event_participants table...")
		return mghelper.DropTables(ctx, db, &registrationpg.EventParticipantDao{})
	})
}
