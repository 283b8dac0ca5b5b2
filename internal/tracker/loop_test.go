package tracker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/models"
	"employee-tracker/internal/service"
)

func TestMenuOrder(t *testing.T) {
	labels := make([]string, len(Menu))
	for i, action := range Menu {
		labels[i] = action.String()
	}

	assert.Equal(t, []string{
		"View All Departments",
		"View All Roles",
		"View All Employees",
		"Add Department",
		"Add Role",
		"Add Employee",
		"Update Employee Role",
		"Exit",
	}, labels)
}

func TestUnknownActionIsRejected(t *testing.T) {
	loop := New(&stubStore{}, nil, nil, zeroLogger())
	for _, action := range Menu {
		if action == Exit {
			continue
		}
		assert.NotEqual(t, "Error with main menu", action.failure(), "action %v", action)
	}
	assert.Error(t, loop.dispatch(context.Background(), Action(99)))
	assert.Equal(t, "Action(99)", Action(99).String())
}

func TestExitReleasesStoreOnce(t *testing.T) {
	store := &stubStore{}

	s := runSession(t, store, "Exit", "View All Departments")
	require.NoError(t, s.err)

	assert.Equal(t, 1, store.closeCalls)
	assert.Contains(t, s.out.String(), "EMPLOYEE TRACKER")
	assert.Contains(t, s.out.String(), "Goodbye!")
	assert.Equal(t, 1, strings.Count(s.out.String(), "What would you like to do?"), "no menu after exit")
}

func TestEndOfInputExits(t *testing.T) {
	store := &stubStore{}

	s := runSession(t, store)
	require.NoError(t, s.err)
	assert.Equal(t, 1, store.closeCalls)
}

func TestFailedActionReturnsToMenu(t *testing.T) {
	store := &stubStore{
		listDepartmentsFn: func(ctx context.Context) ([]service.DepartmentRow, error) {
			return nil, errors.New("connection reset by peer")
		},
	}

	s := runSession(t, store, "View All Departments", "View All Roles", "Exit")
	require.NoError(t, s.err)

	assert.Contains(t, s.logs.String(), "Error viewing departments")
	assert.Contains(t, s.logs.String(), "connection reset by peer")
	assert.Equal(t, 3, strings.Count(s.out.String(), "What would you like to do?"))
	assert.Equal(t, 1, store.closeCalls)
}

func TestStoreRejectionIsLoggedWithCode(t *testing.T) {
	store := &stubStore{
		createDepartmentFn: func(ctx context.Context, input service.CreateDepartmentInput) (models.Department, error) {
			return models.Department{}, apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
		},
	}

	s := runSession(t, store, "Add Department", "Engineering", "Exit")
	require.NoError(t, s.err)

	assert.Contains(t, s.logs.String(), "Error adding department")
	assert.Contains(t, s.logs.String(), `"code":"conflict"`)
	assert.NotContains(t, s.out.String(), "Added Engineering")
	assert.Contains(t, s.out.String(), "Error adding department: resource with the same unique attributes already exists")
}

func TestAbortInsideActionReturnsToMenu(t *testing.T) {
	store := &stubStore{
		allDepartmentsFn: func(ctx context.Context) ([]models.Department, error) {
			return []models.Department{{ID: 1, Name: "Engineering"}}, nil
		},
	}

	// Input ends while the role title is being asked for; the action is
	// cancelled and the menu then sees end of input and exits.
	s := runSession(t, store, "Add Role")
	require.NoError(t, s.err)

	assert.Contains(t, s.out.String(), "Add Role cancelled")
	assert.Equal(t, 1, store.closeCalls)
}

func TestAddDepartment(t *testing.T) {
	var got service.CreateDepartmentInput
	store := &stubStore{
		createDepartmentFn: func(ctx context.Context, input service.CreateDepartmentInput) (models.Department, error) {
			got = input
			return models.Department{ID: 1, Name: input.Name}, nil
		},
	}

	s := runSession(t, store, "Add Department", "", "Engineering", "Exit")
	require.NoError(t, s.err)

	assert.Equal(t, "Engineering", got.Name)
	assert.Contains(t, s.out.String(), "Department name cannot be empty")
	assert.Contains(t, s.out.String(), "Added Engineering to departments")
}

func TestAddRoleWithoutDepartments(t *testing.T) {
	created := false
	store := &stubStore{
		createRoleFn: func(ctx context.Context, input service.CreateRoleInput) (models.Role, error) {
			created = true
			return models.Role{}, nil
		},
	}

	s := runSession(t, store, "Add Role", "Exit")
	require.NoError(t, s.err)

	assert.False(t, created)
	assert.Contains(t, s.out.String(), "You need to add a department first")
	assert.NotContains(t, s.out.String(), "What is the title of the role?")
	assert.Equal(t, 2, strings.Count(s.out.String(), "What would you like to do?"))
}

func TestAddRole(t *testing.T) {
	var got service.CreateRoleInput
	store := &stubStore{
		allDepartmentsFn: func(ctx context.Context) ([]models.Department, error) {
			return []models.Department{{ID: 3, Name: "Engineering"}, {ID: 5, Name: "Sales"}}, nil
		},
		createRoleFn: func(ctx context.Context, input service.CreateRoleInput) (models.Role, error) {
			got = input
			return models.Role{ID: 1, Title: input.Title, Salary: input.Salary, DepartmentID: input.DepartmentID}, nil
		},
	}

	s := runSession(t, store, "Add Role", "Engineer", "-5", "abc", "0", "50000.50", "Sales", "Exit")
	require.NoError(t, s.err)

	assert.Equal(t, service.CreateRoleInput{Title: "Engineer", Salary: 50000.50, DepartmentID: 5}, got)
	assert.Equal(t, 3, strings.Count(s.out.String(), "Please enter a valid salary"))
	assert.Contains(t, s.out.String(), "Added role Engineer with salary 50000.5")
}

func TestAddEmployeeWithoutRoles(t *testing.T) {
	created := false
	store := &stubStore{
		createEmployeeFn: func(ctx context.Context, input service.CreateEmployeeInput) (models.Employee, error) {
			created = true
			return models.Employee{}, nil
		},
	}

	s := runSession(t, store, "Add Employee", "Exit")
	require.NoError(t, s.err)

	assert.False(t, created)
	assert.Contains(t, s.out.String(), "You need to add a role first")
}

func TestAddEmployeeWithNoExistingEmployees(t *testing.T) {
	var got service.CreateEmployeeInput
	store := &stubStore{
		allRolesFn: func(ctx context.Context) ([]models.Role, error) {
			return []models.Role{{ID: 2, Title: "Engineer"}}, nil
		},
		createEmployeeFn: func(ctx context.Context, input service.CreateEmployeeInput) (models.Employee, error) {
			got = input
			return models.Employee{ID: 1, FirstName: input.FirstName, LastName: input.LastName}, nil
		},
	}

	s := runSession(t, store, "Add Employee", "Ada", "", "Lovelace", "Engineer", "1", "Exit")
	require.NoError(t, s.err)

	assert.Equal(t, service.CreateEmployeeInput{FirstName: "Ada", LastName: "Lovelace", RoleID: 2}, got)
	assert.Nil(t, got.ManagerID)
	assert.Contains(t, s.out.String(), "Last name cannot be empty")
	assert.Contains(t, s.out.String(), "1) None")
	assert.Contains(t, s.out.String(), "Added employee Ada Lovelace")
}

func TestAddEmployeeWithManager(t *testing.T) {
	var got service.CreateEmployeeInput
	store := &stubStore{
		allRolesFn: func(ctx context.Context) ([]models.Role, error) {
			return []models.Role{{ID: 2, Title: "Engineer"}}, nil
		},
		allEmployeesFn: func(ctx context.Context) ([]models.Employee, error) {
			return []models.Employee{{ID: 8, FirstName: "Ada", LastName: "Lovelace"}}, nil
		},
		createEmployeeFn: func(ctx context.Context, input service.CreateEmployeeInput) (models.Employee, error) {
			got = input
			return models.Employee{FirstName: input.FirstName, LastName: input.LastName}, nil
		},
	}

	s := runSession(t, store, "Add Employee", "Grace", "Hopper", "1", "Ada Lovelace", "Exit")
	require.NoError(t, s.err)

	require.NotNil(t, got.ManagerID)
	assert.Equal(t, uint(8), *got.ManagerID)
}

func TestUpdateEmployeeRolePreconditions(t *testing.T) {
	t.Run("no employees", func(t *testing.T) {
		s := runSession(t, &stubStore{}, "Update Employee Role", "Exit")
		require.NoError(t, s.err)
		assert.Contains(t, s.out.String(), "No employees found to update")
	})

	t.Run("no roles", func(t *testing.T) {
		store := &stubStore{
			allEmployeesFn: func(ctx context.Context) ([]models.Employee, error) {
				return []models.Employee{{ID: 1, FirstName: "Ada", LastName: "Lovelace"}}, nil
			},
		}
		s := runSession(t, store, "Update Employee Role", "Exit")
		require.NoError(t, s.err)
		assert.Contains(t, s.out.String(), "No roles found to assign")
	})
}

func TestUpdateEmployeeRole(t *testing.T) {
	var employeeID, roleID uint
	store := &stubStore{
		allEmployeesFn: func(ctx context.Context) ([]models.Employee, error) {
			return []models.Employee{
				{ID: 1, FirstName: "Ada", LastName: "Lovelace"},
				{ID: 4, FirstName: "Grace", LastName: "Hopper"},
			}, nil
		},
		allRolesFn: func(ctx context.Context) ([]models.Role, error) {
			return []models.Role{{ID: 2, Title: "Engineer"}, {ID: 6, Title: "Manager"}}, nil
		},
		updateEmployeeRoleFn: func(ctx context.Context, e uint, r uint) error {
			employeeID, roleID = e, r
			return nil
		},
	}

	s := runSession(t, store, "Update Employee Role", "Grace Hopper", "Manager", "Exit")
	require.NoError(t, s.err)

	assert.Equal(t, uint(4), employeeID)
	assert.Equal(t, uint(6), roleID)
	assert.Contains(t, s.out.String(), "Employee role updated successfully")
}

func TestViewEmployeesBlankCells(t *testing.T) {
	title := "Engineer"
	store := &stubStore{
		listEmployeesFn: func(ctx context.Context) ([]service.EmployeeRow, error) {
			return []service.EmployeeRow{{ID: 1, FirstName: "Ada", LastName: "Lovelace", Title: &title}}, nil
		},
	}

	s := runSession(t, store, "View All Employees", "Exit")
	require.NoError(t, s.err)

	assert.Contains(t, s.out.String(), "first_name")
	assert.Contains(t, s.out.String(), "manager")
	assert.Contains(t, s.out.String(), "Lovelace")
	assert.Contains(t, s.out.String(), "Engineer")
}

func TestViewEmptyTables(t *testing.T) {
	s := runSession(t, &stubStore{}, "View All Departments", "View All Roles", "Exit")
	require.NoError(t, s.err)

	assert.Contains(t, s.out.String(), "name")
	assert.Contains(t, s.out.String(), "salary")
}
