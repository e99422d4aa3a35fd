package models

// Division is a top-level administrative unit.
type Division struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SubDivision belongs to a division; the filter sheets cascade on DivisionID.
type SubDivision struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	DivisionID int    `json:"division_id"`
}

// Designation belongs to a department.
type Designation struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DepartmentID int    `json:"department_id"`
}

// AssignableUser is a user a complaint can be assigned to, scoped by
// department and designation for cascading selection.
type AssignableUser struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	DepartmentID  int    `json:"department_id"`
	DesignationID int    `json:"designation_id"`
}

// AssignmentOptions are the reference lists the assignment sheet needs.
type AssignmentOptions struct {
	Divisions    []Division       `json:"divisions"`
	SubDivisions []SubDivision    `json:"subdivisions"`
	Departments  []Option         `json:"departments"`
	Designations []Designation    `json:"designations"`
	Users        []AssignableUser `json:"users"`
}
