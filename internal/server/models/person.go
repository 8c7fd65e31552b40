package models

// Person is one employee. ManagerID is nil for the top of the chart.
type Person struct {
	ID           int64  `json:"id"`
	JobID        int64  `json:"job_id"`
	DepartmentID int64  `json:"department_id"`
	ManagerID    *int64 `json:"manager_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	HireDate     string `json:"hire_date"`
}

// PersonInfo is the list view: a person joined with job, department and
// manager names. PhotoKey is empty when no photo was uploaded.
type PersonInfo struct {
	Person
	JobTitle        string `json:"job_title"`
	DepartmentName  string `json:"department_name"`
	ManagerFullName string `json:"manager_full_name,omitempty"`
	PhotoKey        string `json:"photo_key,omitempty"`
}

// ManagerRef is the manager embedded in PersonDetails.
type ManagerRef struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// PersonDetails is the single-person view.
type PersonDetails struct {
	ID         int64       `json:"id"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	HireDate   string      `json:"hire_date"`
	Manager    *ManagerRef `json:"manager"`
	Department Department  `json:"department"`
	Job        Job         `json:"job"`
}

// PersonInput is the request body of create and update. A nil field is
// absent; on update it leaves the stored value unchanged.
type PersonInput struct {
	JobID        *int64  `json:"job_id"`
	DepartmentID *int64  `json:"department_id"`
	ManagerID    *int64  `json:"manager_id"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	HireDate     *string `json:"hire_date"`
}

func (in PersonInput) ValidateForCreation() error {
	switch {
	case in.JobID == nil:
		return validationError("job_id is required")
	case in.DepartmentID == nil:
		return validationError("department_id is required")
	case in.FirstName == nil:
		return validationError("first_name is required")
	case in.LastName == nil:
		return validationError("last_name is required")
	case in.HireDate == nil:
		return validationError("hire_date is required")
	}
	return in.validatePresent()
}

func (in PersonInput) ValidateForUpdate() error {
	if in.JobID == nil && in.DepartmentID == nil && in.ManagerID == nil &&
		in.FirstName == nil && in.LastName == nil && in.HireDate == nil {
		return validationError("no fields to update")
	}
	return in.validatePresent()
}

func (in PersonInput) validatePresent() error {
	if in.JobID != nil {
		if err := validateID("job_id", *in.JobID); err != nil {
			return err
		}
	}
	if in.DepartmentID != nil {
		if err := validateID("department_id", *in.DepartmentID); err != nil {
			return err
		}
	}
	if in.ManagerID != nil {
		if err := validateID("manager_id", *in.ManagerID); err != nil {
			return err
		}
	}
	if in.FirstName != nil {
		if err := validateName("first_name", *in.FirstName); err != nil {
			return err
		}
	}
	if in.LastName != nil {
		if err := validateName("last_name", *in.LastName); err != nil {
			return err
		}
	}
	if in.HireDate != nil {
		if err := validateDate("hire_date", *in.HireDate); err != nil {
			return err
		}
	}
	return nil
}

func (in PersonInput) ApplyTo(p *Person) {
	if in.JobID != nil {
		p.JobID = *in.JobID
	}
	if in.DepartmentID != nil {
		p.DepartmentID = *in.DepartmentID
	}
	if in.ManagerID != nil {
		id := *in.ManagerID
		p.ManagerID = &id
	}
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	if in.HireDate != nil {
		p.HireDate = *in.HireDate
	}
}
