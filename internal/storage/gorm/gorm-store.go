package gorm_store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	gorm_mysql "gorm.io/driver/mysql"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/init-pkg/rework-tracker/domain/app"
)

type blobRow struct {
	BlobKey   string `gorm:"primaryKey;column:blob_key;size:191"`
	Value     []byte `gorm:"column:value"`
	UpdatedAt time.Time
}

func (blobRow) TableName() string {
	return "kv_blobs"
}

type Store struct {
	db *gorm.DB
}

var _ app.BlobStore = &Store{}

// OpenPostgres opens the database through lib/pq and hands the pool to gorm.
func OpenPostgres(dsn string) (*sql.DB, *Store, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}
	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), gormConfig())
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("gorm postgres: %w", err)
	}
	return sqlDB, &Store{db: db}, nil
}

func OpenMySQL(dsn string) (*sql.DB, *Store, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open mysql: %w", err)
	}
	db, err := gorm.Open(gorm_mysql.New(gorm_mysql.Config{Conn: sqlDB}), gormConfig())
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("gorm mysql: %w", err)
	}
	return sqlDB, &Store{db: db}, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
}

func (this *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row blobRow
	err := this.db.WithContext(ctx).First(&row, "blob_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get blob %s: %w", key, err)
	}
	return row.Value, true, nil
}

func (this *Store) Set(ctx context.Context, key string, blob []byte) error {
	row := blobRow{BlobKey: key, Value: blob, UpdatedAt: time.Now().UTC()}
	err := this.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "blob_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		if isTooLarge(err) {
			return fmt.Errorf("set blob %s: %w: %v", key, app.ErrQuotaExceeded, err)
		}
		return fmt.Errorf("set blob %s: %w", key, err)
	}
	return nil
}

func (this *Store) Remove(ctx context.Context, key string) error {
	if err := this.db.WithContext(ctx).Delete(&blobRow{}, "blob_key = ?", key).Error; err != nil {
		return fmt.Errorf("remove blob %s: %w", key, err)
	}
	return nil
}

func (this *Store) Close() error {
	sqlDB, err := this.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// isTooLarge recognises the backend refusing a blob for its size: postgres
// program_limit_exceeded, mysql max_allowed_packet.
func isTooLarge(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "54"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1153 || myErr.Number == 1301
	}
	return errors.Is(err, mysql.ErrPktTooLarge)
}
