package models

type Employee struct {
	ID        uint      `gorm:"primaryKey"`
	FirstName string    `gorm:"type:varchar(30);not null"`
	LastName  string    `gorm:"type:varchar(30);not null"`
	RoleID    uint      `gorm:"not null;index"`
	Role      Role      `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	ManagerID *uint     `gorm:"index"`
	Manager   *Employee `gorm:"foreignKey:ManagerID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Employee) TableName() string {
	return "employee"
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
