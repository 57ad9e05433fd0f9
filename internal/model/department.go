package model

// Department 部门参照数据
// 初始化时一次性播种,之后仅管理员可增删;删除部门不回溯修改已有员工记录
type Department struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);not null;uniqueIndex"`
}

// TableName 指定表名
func (Department) TableName() string {
	return "departments"
}

// SeedDepartments 初始部门列表
func SeedDepartments() []Department {
	names := []string{
		"HR", "IT", "Finance", "Sales", "Marketing", "Operations",
		"Customer Support", "Admin", "R&D", "Procurement", "Legal",
	}
	departments := make([]Department, 0, len(names))
	for _, name := range names {
		departments = append(departments, Department{Name: name})
	}
	return departments
}
