package tikketdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	eventpg "github.com/tikket/tikket-server/pkg/event/store/pg"
	mghelper "github.com/tikket/tikket-server/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating events table...")
		if err := mghelper.CreateSchema(ctx, db, &eventpg.EventDao{}); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			ALTER TABLE events
			ADD CONSTRAINT fk_events_organiser
			FOREIGN KEY (organiser_id) REFERENCES "user"(id) ON DELETE CASCADE
		`); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &eventpg.EventDao{}, "organiser_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping events table...")
		return mghelper.DropTables(ctx, db, &eventpg.EventDao{})
	})
}
