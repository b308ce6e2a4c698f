package contenttype

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperr "cptui.GO/core/errors"
	"cptui.GO/hooks"
	entity "cptui.GO/model/entity"
)

type ContentTypeRepository struct {
	db *gorm.DB
}

func NewContentTypeRepository(db *gorm.DB) *ContentTypeRepository {
	return &ContentTypeRepository{db: db}
}

// AutoMigrate creates the records table. Production schemas go through
// the embedded migrations; tests and sqlite use this.
func (r *ContentTypeRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&entity.ContentTypeRecord{})
}

// FindAll returns every stored record of kind keyed by name.
func (r *ContentTypeRepository) FindAll(ctx context.Context, kind hooks.Kind) (hooks.Records, error) {
	var rows []entity.ContentTypeRecord
	if err := r.db.WithContext(ctx).Where("kind = ?", kind.String()).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("contenttype: find %s: %w", kind, err)
	}
	out := make(hooks.Records, len(rows))
	for _, row := range rows {
		rec, err := decode(row)
		if err != nil {
			return nil, err
		}
		out[row.Name] = rec
	}
	return out, nil
}

// FindByName returns one record or a NotFoundError.
func (r *ContentTypeRepository) FindByName(ctx context.Context, kind hooks.Kind, name string) (hooks.Record, error) {
	var row entity.ContentTypeRecord
	err := r.db.WithContext(ctx).Where("kind = ? AND name = ?", kind.String(), name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NewNotFoundError(kind.String(), name)
	}
	if err != nil {
		return nil, fmt.Errorf("contenttype: find %s %q: %w", kind, name, err)
	}
	return decode(row)
}

// Names returns the stored names of kind in sorted order.
func (r *ContentTypeRepository) Names(ctx context.Context, kind hooks.Kind) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&entity.ContentTypeRecord{}).
		Where("kind = ?", kind.String()).Order("name").Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("contenttype: names %s: %w", kind, err)
	}
	return names, nil
}

// SaveAll upserts every record of kind in one transaction. Records missing
// from the map are left alone.
func (r *ContentTypeRepository) SaveAll(ctx context.Context, kind hooks.Kind, records hooks.Records) error {
	if len(records) == 0 {
		return nil
	}
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]entity.ContentTypeRecord, 0, len(records))
	for _, name := range names {
		data, err := json.Marshal(records[name])
		if err != nil {
			return fmt.Errorf("contenttype: encode %s %q: %w", kind, name, err)
		}
		rows = append(rows, entity.ContentTypeRecord{
			Kind: kind.String(),
			Name: name,
			Data: datatypes.JSON(data),
		})
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).Create(&rows).Error
	})
}

// Save upserts the one record stored under name. Other records of kind are
// not touched.
func (r *ContentTypeRepository) Save(ctx context.Context, kind hooks.Kind, name string, record hooks.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("contenttype: encode %s %q: %w", kind, name, err)
	}
	row := entity.ContentTypeRecord{Kind: kind.String(), Name: name, Data: datatypes.JSON(data)}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("contenttype: save %s %q: %w", kind, name, err)
	}
	return nil
}

// Delete removes one record.
func (r *ContentTypeRepository) Delete(ctx context.Context, kind hooks.Kind, name string) error {
	res := r.db.WithContext(ctx).Where("kind = ? AND name = ?", kind.String(), name).Delete(&entity.ContentTypeRecord{})
	if res.Error != nil {
		return fmt.Errorf("contenttype: delete %s %q: %w", kind, name, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NewNotFoundError(kind.String(), name)
	}
	return nil
}

func decode(row entity.ContentTypeRecord) (hooks.Record, error) {
	rec := hooks.Record{}
	if len(row.Data) == 0 {
		return rec, nil
	}
	if err := json.Unmarshal(row.Data, &rec); err != nil {
		return nil, fmt.Errorf("contenttype: decode %s %q: %w", row.Kind, row.Name, err)
	}
	return rec, nil
}
