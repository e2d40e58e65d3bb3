package models

// Department is the top-level grouping of the catalog.
// Names are unique across all departments.
type Department struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;not null;uniqueIndex:idx_departments_name"`
}

func (d *Department) TableName() string {
	return "departments"
}
