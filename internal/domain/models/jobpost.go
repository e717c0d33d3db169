package models

import (
	"errors"
	"time"
)

type LocationType string

const (
	OnSite LocationType = "on-site"
	Hybrid LocationType = "hybrid"
	Remote LocationType = "remote"
)

func ToLocationType(s string) (LocationType, error) {
	switch s {
	case string(OnSite):
		return OnSite, nil
	case string(Hybrid):
		return Hybrid, nil
	case string(Remote):
		return Remote, nil
	default:
		return "", errors.New("invalid location type")
	}
}

type EmploymentType string

const (
	FullTime   EmploymentType = "full-time"
	PartTime   EmploymentType = "part-time"
	Contract   EmploymentType = "contract"
	Internship EmploymentType = "internship"
	Temporary  EmploymentType = "temporary"
)

func ToEmploymentType(s string) (EmploymentType, error) {
	switch s {
	case string(FullTime):
		return FullTime, nil
	case string(PartTime):
		return PartTime, nil
	case string(Contract):
		return Contract, nil
	case string(Internship):
		return Internship, nil
	case string(Temporary):
		return Temporary, nil
	default:
		return "", errors.New("invalid employment type")
	}
}

// JobPost is immutable once created: the board has no edit or delete path.
type JobPost struct {
	ID             uint
	Title          string
	Description    string
	Location       string
	LocationType   LocationType
	EmploymentType EmploymentType
	PhoneNumber    string
	AuthorID       uint
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewJobPost(title, description, location string, locationType LocationType,
	employmentType EmploymentType, phoneNumber string, authorID uint) *JobPost {

	return &JobPost{
		Title:          title,
		Description:    description,
		Location:       location,
		LocationType:   locationType,
		EmploymentType: employmentType,
		PhoneNumber:    phoneNumber,
		AuthorID:       authorID,
	}
}
