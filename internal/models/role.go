package models

type Role struct {
	ID           uint       `gorm:"primaryKey"`
	Title        string     `gorm:"type:varchar(30);not null"`
	Salary       float64    `gorm:"type:decimal(12,2);not null"`
	DepartmentID uint       `gorm:"not null;index"`
	Department   Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

func (Role) TableName() string {
	return "role"
}
