package recordstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yastm-generator/core/database"
	"yastm-generator/core/plugin"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSchemaMismatch means the database was created by an incompatible version.
var ErrSchemaMismatch = errors.New("record database schema mismatch")

const batchSize = 200

// Store reads and writes plugins in the record database.
type Store struct {
	db *gorm.DB
}

// New creates a store on db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&PluginRow{}, &SoulGemRow{}); err != nil {
		return fmt.Errorf("failed to migrate record database: %w", err)
	}
	return nil
}

// Check verifies soul_gems has every column the store reads.
func (s *Store) Check(ctx context.Context) error {
	missing, err := database.MissingColumns(s.db.WithContext(ctx), SoulGemRow{}.TableName(), soulGemColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: soul_gems lacks %s", ErrSchemaMismatch, strings.Join(missing, ", "))
	}
	return nil
}

// LoadMods loads the named plugins in order. A plugin the database does not know
// loads as an empty mod.
func (s *Store) LoadMods(ctx context.Context, names []plugin.ModKey) ([]*plugin.Mod, error) {
	mods := make([]*plugin.Mod, 0, len(names))
	for _, name := range names {
		var rows []SoulGemRow
		err := s.db.WithContext(ctx).
			Where("plugin = ?", string(name)).
			Order("position").
			Find(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}

		mod := plugin.NewMod(name)
		for _, row := range rows {
			gem, err := row.toSoulGem()
			if err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", name, err)
			}
			mod.Add(gem)
		}
		mods = append(mods, mod)
	}
	return mods, nil
}

// SaveMod replaces the stored records of mod with its current records.
func (s *Store) SaveMod(ctx context.Context, mod *plugin.Mod) error {
	name := string(mod.ModKey())
	rows := make([]SoulGemRow, 0, mod.Len())
	for i, gem := range mod.SoulGems() {
		rows = append(rows, rowFromSoulGem(mod.ModKey(), i, gem))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		row := PluginRow{Name: name, CreatedAt: now, UpdatedAt: now}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).Create(&row).Error; err != nil {
			return err
		}

		if err := tx.Where("plugin = ?", name).Delete(&SoulGemRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, batchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	return nil
}
