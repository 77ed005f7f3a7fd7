// persistence/gorm_postgresql.go
package persistence

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/wfunc/hangman/models"
)

// GormPostgreSQL implements Store with GORM on PostgreSQL.
type GormPostgreSQL struct {
	db *gorm.DB
}

// SavedRoundModel is the gorm row for a save slot.
type SavedRoundModel struct {
	Slot      string `gorm:"primaryKey"`
	Data      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SavedRoundModel) TableName() string { return "gorm_saved_rounds" }

// GameRecordModel is the gorm row for a finished round.
type GameRecordModel struct {
	RoundID      string `gorm:"primaryKey"`
	SecretWord   string `gorm:"not null"`
	Outcome      string `gorm:"index;not null"`
	WrongGuesses int    `gorm:"not null"`
	TotalGuesses int    `gorm:"not null"`
	CreatedAt    time.Time
}

func (GameRecordModel) TableName() string { return "gorm_game_records" }

// NewGormPostgreSQL connects through GORM and migrates the tables.
func NewGormPostgreSQL(dsn string) (*GormPostgreSQL, error) {
	return openGorm(postgres.Open(dsn))
}

// autoMigrate creates or updates the gorm tables.
var autoMigrate = func(db *gorm.DB) error {
	return db.AutoMigrate(&SavedRoundModel{}, &GameRecordModel{})
}

func openGorm(dialector gorm.Dialector) (*GormPostgreSQL, error) {
	gormLogger := logger.New(
		log.New(os.Stderr, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Silent,
			Colorful:      false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := autoMigrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &GormPostgreSQL{db: db}, nil
}

func (p *GormPostgreSQL) SaveRound(ctx context.Context, slot string, data []byte) error {
	row := SavedRoundModel{Slot: slot, Data: string(data)}
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}

func (p *GormPostgreSQL) LoadRound(ctx context.Context, slot string) ([]byte, error) {
	var row SavedRoundModel
	if err := p.db.WithContext(ctx).Where("slot = ?", slot).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return []byte(row.Data), nil
}

func (p *GormPostgreSQL) SaveGameRecord(ctx context.Context, record models.GameRecord) error {
	row := GameRecordModel{
		RoundID:      record.RoundID,
		SecretWord:   record.SecretWord,
		Outcome:      record.Outcome,
		WrongGuesses: record.WrongGuesses,
		TotalGuesses: record.TotalGuesses,
		CreatedAt:    record.CreatedAt,
	}
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

func (p *GormPostgreSQL) Stats(ctx context.Context) (models.Stats, error) {
	var total, wins, losses int64
	q := p.db.WithContext(ctx).Model(&GameRecordModel{})
	if err := q.Count(&total).Error; err != nil {
		return models.Stats{}, err
	}
	if err := p.db.WithContext(ctx).Model(&GameRecordModel{}).Where("outcome = ?", models.OutcomeWin).Count(&wins).Error; err != nil {
		return models.Stats{}, err
	}
	if err := p.db.WithContext(ctx).Model(&GameRecordModel{}).Where("outcome = ?", models.OutcomeLose).Count(&losses).Error; err != nil {
		return models.Stats{}, err
	}
	return models.Stats{TotalGames: int(total), Wins: int(wins), Losses: int(losses)}, nil
}

// Close closes the underlying connection pool.
func (p *GormPostgreSQL) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
