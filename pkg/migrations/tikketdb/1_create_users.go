package tikketdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/tikket/tikket-server/pkg/pgutil/migrations"
	"github.com/tikket/tikket-server/pkg/userstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating user and session tables...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.UserDao{}, &userstore.SessionDao{}); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `
			ALTER TABLE session
			ADD CONSTRAINT fk_session_user
			FOREIGN KEY (user_id) REFERENCES "user"(id) ON DELETE CASCADE
		`); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &userstore.SessionDao{}, "user_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping user and session tables...")
		return mghelper.DropTables(ctx, db, &userstore.SessionDao{}, &userstore.UserDao{})
	})
}
