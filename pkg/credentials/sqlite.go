package credentials

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDatabase = errors.New("the credential database could not be accessed")

// credential is the single row holding the stored credentials.
type credential struct {
	ID        uint `gorm:"primaryKey"`
	Token     string
	UserID    string
	UpdatedAt time.Time
}

func (credential) TableName() string {
	return "credentials"
}

// rowID is the primary key of the only credentials row.
const rowID = 1

// Ensure the SQLite store implements Store
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore persists the credentials in a SQLite database.
type SQLiteStore struct {
	db     *gorm.DB
	sealer sealer
}

// Open opens the SQLite database at dsn and migrates the schema.
//
// When key is not empty, tokens are sealed with it before being written.
func Open(dsn string, key []byte) (*SQLiteStore, error) {
	s, err := newSealer(key)
	if err != nil {
		return nil, err
	}

	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(credential{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return &SQLiteStore{db: db, sealer: s}, nil
}

// Get returns the stored credentials, or the zero value if there are none.
func (s *SQLiteStore) Get(ctx context.Context) (Credentials, error) {
	var rows []credential
	err := s.db.WithContext(ctx).Limit(1).Find(&rows, rowID).Error
	if err != nil {
		return Credentials{}, dbError(err)
	}

	if len(rows) == 0 {
		return Credentials{}, nil
	}

	token, err := s.sealer.open(rows[0].Token)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{Token: token, UserID: rows[0].UserID}, nil
}

// Set replaces the stored credentials.
func (s *SQLiteStore) Set(ctx context.Context, c Credentials) error {
	if c.UserID == "" {
		c.UserID = UserIDFromToken(c.Token)
	}

	token, err := s.sealer.seal(c.Token)
	if err != nil {
		return err
	}

	row := credential{ID: rowID, Token: token, UserID: c.UserID}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	if err != nil {
		return dbError(err)
	}

	return nil
}

// Clear removes the token and the user id.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	err := s.db.WithContext(ctx).Delete(&credential{}, rowID).Error
	if err != nil {
		return dbError(err)
	}

	return nil
}

// Ping checks that the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return dbError(err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return dbError(err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// dbError replaces driver errors with ErrDatabase after logging them.
func dbError(err error) error {
	// "sql: database is closed" is hard-coded in the sql module
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrDatabase
	}

	return err
}
