package tracker

import "fmt"

// Action is one entry of the main menu.
type Action int

const (
	ViewDepartments Action = iota
	ViewRoles
	ViewEmployees
	AddDepartment
	AddRole
	AddEmployee
	UpdateEmployeeRole
	Exit
)

// Menu lists the actions in the order they are offered.
var Menu = []Action{
	ViewDepartments,
	ViewRoles,
	ViewEmployees,
	AddDepartment,
	AddRole,
	AddEmployee,
	UpdateEmployeeRole,
	Exit,
}

func (a Action) String() string {
	switch a {
	case ViewDepartments:
		return "View All Departments"
	case ViewRoles:
		return "View All Roles"
	case ViewEmployees:
		return "View All Employees"
	case AddDepartment:
		return "Add Department"
	case AddRole:
		return "Add Role"
	case AddEmployee:
		return "Add Employee"
	case UpdateEmployeeRole:
		return "Update Employee Role"
	case Exit:
		return "Exit"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// failure is the operator log message for an action that did not finish.
func (a Action) failure() string {
	switch a {
	case ViewDepartments:
		return "Error viewing departments"
	case ViewRoles:
		return "Error viewing roles"
	case ViewEmployees:
		return "Error viewing employees"
	case AddDepartment:
		return "Error adding department"
	case AddRole:
		return "Error adding role"
	case AddEmployee:
		return "Error adding employee"
	case UpdateEmployeeRole:
		return "Error updating employee role"
	}
	return "Error with main menu"
}
