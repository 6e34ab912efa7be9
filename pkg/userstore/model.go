package userstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/tikket/tikket-server/pkg/user"
)

// UserDao is a data access object that maps directly to the 'user' table in PostgreSQL.
// The table name is singular because the external auth system owns the schema.
type UserDao struct {
	bun.BaseModel `bun:"table:user,alias:usr"`
	ID            string    `bun:"id,pk,type:text"`
	Name          string    `bun:"name,notnull,type:text"`
	Email         string    `bun:"email,unique,notnull,type:text"`
	EmailVerified bool      `bun:"email_verified,notnull"`
	Image         *string   `bun:"image,type:text"`
	CreatedAt     time.Time `bun:"created_at,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,notnull"`
}

// SessionDao is a data access object that maps directly to the 'session' table in PostgreSQL.
type SessionDao struct {
	bun.BaseModel `bun:"table:session,alias:sess"`
	ID            string    `bun:"id,pk,type:text"`
	ExpiresAt     time.Time `bun:"expires_at,notnull"`
	Token         string    `bun:"token,unique,notnull,type:text"`
	CreatedAt     time.Time `bun:"created_at,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,notnull"`
	IPAddress     *string   `bun:"ip_address,type:text"`
	UserAgent     *string   `bun:"user_agent,type:text"`
	UserID        string    `bun:"user_id,notnull,type:text"`
}

// toUserDao converts a user.User to UserDao.
func toUserDao(usr *user.User) *UserDao {
	dao := &UserDao{
		ID:            usr.ID,
		Name:          usr.Name,
		Email:         usr.Email,
		EmailVerified: usr.EmailVerified,
		CreatedAt:     usr.CreatedAt,
		UpdatedAt:     usr.UpdatedAt,
	}
	if usr.Image != "" {
		dao.Image = &usr.Image
	}
	return dao
}

// toUser converts a UserDao to user.User.
func toUser(dao *UserDao) *user.User {
	usr := &user.User{
		ID:            dao.ID,
		Name:          dao.Name,
		Email:         dao.Email,
		EmailVerified: dao.EmailVerified,
		CreatedAt:     dao.CreatedAt,
		UpdatedAt:     dao.UpdatedAt,
	}
	if dao.Image != nil {
		usr.Image = *dao.Image
	}
	return usr
}

// toSessionDao converts a user.Session to SessionDao.
func toSessionDao(sess *user.Session) *SessionDao {
	dao := &SessionDao{
		ID:        sess.ID,
		ExpiresAt: sess.ExpiresAt,
		Token:     sess.Token,
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
		UserID:    sess.UserID,
	}
	if sess.IPAddress != "" {
		dao.IPAddress = &sess.IPAddress
	}
	if sess.UserAgent != "" {
		dao.UserAgent = &sess.UserAgent
	}
	return dao
}

// toSession converts a SessionDao to user.Session.
func toSession(dao *SessionDao) *user.Session {
	sess := &user.Session{
		ID:        dao.ID,
		ExpiresAt: dao.ExpiresAt,
		Token:     dao.Token,
		CreatedAt: dao.CreatedAt,
		UpdatedAt: dao.UpdatedAt,
		UserID:    dao.UserID,
	}
	if dao.IPAddress != nil {
		sess.IPAddress = *dao.IPAddress
	}
	if dao.UserAgent != nil {
		sess.UserAgent = *dao.UserAgent
	}
	return sess
}
