package tikketdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/tikket/tikket-server/pkg/pgutil/migrations"
	walletpg "github.com/tikket/tikket-server/pkg/wallet/store/pg"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating wallet_details table...")
		if err := mghelper.CreateSchema(ctx, db, &walletpg.WalletDao{}); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			ALTER TABLE wallet_details
			ADD CONSTRAINT fk_wallet_details_user
			FOREIGN KEY (user_id) REFERENCES "user"(id) ON DELETE CASCADE
		`); err != nil {
			return err
		}
		// The wallet upsert conflicts on this pair.
		_, err := db.ExecContext(ctx, `
			CREATE UNIQUE INDEX IF NOT EXISTS idx_wallet_details_user_id_public_key
			ON wallet_details (user_id, public_key)
		`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping wallet_details table...")
		return mghelper.DropTables(ctx, db, &walletpg.WalletDao{})
	})
}
