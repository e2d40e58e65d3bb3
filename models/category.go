package models

// Category belongs to exactly one Department.
// Names are unique within the owning department.
type Category struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:50;not null;uniqueIndex:idx_categories_department_name,priority:2"`
	DepartmentID uint   `gorm:"not null;index;uniqueIndex:idx_categories_department_name,priority:1"`

	// Department is declared for the foreign key only and is never loaded.
	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (c *Category) TableName() string {
	return "categories"
}
