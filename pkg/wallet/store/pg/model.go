package pg

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/tikket/tikket-server/pkg/wallet"
)

// WalletDao is a data access object that maps directly to the 'wallet_details'
// table in PostgreSQL.
type WalletDao struct {
	bun.BaseModel `bun:"table:wallet_details,alias:wd"`
	ID            string    `bun:"id,pk,type:text"`
	UserID        string    `bun:"user_id,notnull,type:text"`
	PublicKey     string    `bun:"public_key,notnull,type:text"`
	Balance       string    `bun:"balance,notnull,type:text"`
	CreatedAt     time.Time `bun:"created_at,nullzero,default:current_timestamp"`
}

func toWalletDao(w *wallet.Wallet) *WalletDao {
	return &WalletDao{
		ID:        w.ID,
		UserID:    w.UserID,
		PublicKey: w.PublicKey,
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt,
	}
}

func toWallet(dao *WalletDao) *wallet.Wallet {
	return &wallet.Wallet{
		ID:        dao.ID,
		UserID:    dao.UserID,
		PublicKey: dao.PublicKey,
		Balance:   dao.Balance,
		CreatedAt: dao.CreatedAt,
	}
}
