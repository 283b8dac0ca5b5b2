package tracker

import "employee-tracker/internal/prompt"

var (
	departmentNameField = prompt.Field{
		Question: "What is the name of the department?",
		Validate: prompt.NonEmpty("Department name"),
	}
	roleTitleField = prompt.Field{
		Question: "What is the title of the role?",
		Validate: prompt.NonEmpty("Role title"),
	}
	roleSalaryField = prompt.Field{
		Question: "What is the salary for this role?",
		Validate: prompt.PositiveNumber("salary"),
	}
	firstNameField = prompt.Field{
		Question: "What is the employee's first name?",
		Validate: prompt.NonEmpty("First name"),
	}
	lastNameField = prompt.Field{
		Question: "What is the employee's last name?",
		Validate: prompt.NonEmpty("Last name"),
	}
)
