package entity

import (
	"time"

	"gorm.io/datatypes"
)

// ContentTypeRecord stores one post type or taxonomy definition. Data holds
// the full record as a JSON object, including keys added by extensions.
type ContentTypeRecord struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement"`
	Kind      string         `gorm:"column:kind;type:varchar(16);not null;uniqueIndex:idx_cptui_records_kind_name"`
	Name      string         `gorm:"column:name;type:varchar(32);not null;uniqueIndex:idx_cptui_records_kind_name"`
	Data      datatypes.JSON `gorm:"column:data;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (ContentTypeRecord) TableName() string {
	return "cptui_records"
}
