package models

type Job struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// JobInput is the request body of create and update.
type JobInput struct {
	Title *string `json:"title"`
}

func (in JobInput) ValidateForCreation() error {
	if in.Title == nil {
		return validationError("title is required")
	}
	return validateName("title", *in.Title)
}

func (in JobInput) ValidateForUpdate() error {
	if in.Title == nil {
		return validationError("no fields to update")
	}
	return validateName("title", *in.Title)
}

func (in JobInput) ApplyTo(j *Job) {
	if in.Title != nil {
		j.Title = *in.Title
	}
}
