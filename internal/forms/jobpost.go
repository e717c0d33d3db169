package forms

import (
	"strings"

	"github.com/kmureithi/devfolio/internal/domain/models"
)

// JobPostForm is the sole enforcement point for job-post field rules: the
// repository trusts validated input.
type JobPostForm struct {
	Title          string `form:"title" validate:"required,min=3,max=100"`
	Description    string `form:"description" validate:"required,min=10"`
	Location       string `form:"location" validate:"required,min=2"`
	LocationType   string `form:"location_type" validate:"required,oneof=on-site hybrid remote"`
	EmploymentType string `form:"employment_type" validate:"required,oneof=full-time part-time contract internship temporary"`
	PhoneNumber    string `form:"phone_number" validate:"required,phone"`
}

var jobPostMessages = map[string]map[string]string{
	"Title": {
		"required": "Job Title is required.",
		"min":      "Job Title must be at least 3 characters long.",
		"max":      "Job Title must be less than 100 characters.",
	},
	"Description": {
		"required": "Job Description is required.",
		"min":      "Job Description must be at least 10 characters long.",
	},
	"Location": {
		"required": "Location is required.",
		"min":      "Location must be at least 2 characters long.",
	},
	"LocationType": {
		"required": "Please select a Location Type.",
		"oneof":    "Please select a Location Type.",
	},
	"EmploymentType": {
		"required": "Please select an Employment Type.",
		"oneof":    "Please select an Employment Type.",
	},
	"PhoneNumber": {
		"required": "Phone Number is required.",
		"phone":    "Please enter a valid Phone Number (7-20 characters, digits, spaces, +, -, (, ) allowed).",
	},
}

// Validate trims free-text fields, then checks the rules in fixed order;
// the first failing rule wins.
func (f *JobPostForm) Validate() error {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Location = strings.TrimSpace(f.Location)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)

	return firstError(validate.Struct(f), jobPostMessages, "Please review the form fields.")
}

func (f *JobPostForm) ToModel(authorID uint) (*models.JobPost, error) {

	locationType, err := models.ToLocationType(f.LocationType)
	if err != nil {
		return nil, err
	}

	employmentType, err := models.ToEmploymentType(f.EmploymentType)
	if err != nil {
		return nil, err
	}

	return models.NewJobPost(f.Title, f.Description, f.Location, locationType,
		employmentType, f.PhoneNumber, authorID), nil
}
