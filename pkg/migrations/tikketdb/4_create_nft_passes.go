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
		log.Println("creating nft_passes table...")
		if err := mghelper.CreateSchema(ctx, db, &registrationpg.NFTPassDao{}); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			ALTER TABLE nft_passes
			ADD CONSTRAINT fk_nft_passes_event
			FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
		`); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			ALTER TABLE nft_passes
			ADD CONSTRAINT fk_nft_passes_user
			FOREIGN KEY (user_id) REFERENCES "user"(id) ON DELETE CASCADE
		`); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx, `
			CREATE UNIQUE INDEX IF NOT EXISTS idx_nft_passes_event_id_user_id
			ON nft_passes (event_id, user_id)
		`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping nft_passes table...")
		return mghelper.DropTables(ctx, db, &registrationpg.NFTPassDao{})
	})
}
