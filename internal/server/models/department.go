package models

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DepartmentInput is the request body of create and update.
type DepartmentInput struct {
	Name *string `json:"name"`
}

func (in DepartmentInput) ValidateForCreation() error {
	if in.Name == nil {
		return validationError("name is required")
	}
	return validateName("name", *in.Name)
}

func (in DepartmentInput) ValidateForUpdate() error {
	if in.Name == nil {
		return validationError("no fields to update")
	}
	return validateName("name", *in.Name)
}

func (in DepartmentInput) ApplyTo(d *Department) {
	if in.Name != nil {
		d.Name = *in.Name
	}
}
