package catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brightacademy/backend/core"
)

const defaultCurrency = "Rs."

type (
	Fees struct {
		Original   float64 `json:"original" bson:"original"`
		Discounted float64 `json:"discounted" bson:"discounted"`
		Currency   string  `json:"currency" bson:"currency"`
	}

	SyllabusModule struct {
		Module   string   `json:"module" bson:"module" validate:"required"`
		Topics   []string `json:"topics" bson:"topics"`
		Duration string   `json:"duration" bson:"duration"`
	}

	Certificate struct {
		Image    string   `json:"image" bson:"image"`
		Criteria []string `json:"criteria" bson:"criteria"`
	}

	// Course is always embedded in its owning Category. ID is the stable
	// internal identifier; CourseCode is the external, renamable lookup key
	// and is unique across the whole catalog.
	Course struct {
		ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
		CourseCode  string             `json:"courseCode" bson:"courseCode"`
		CourseName  string             `json:"courseName" bson:"courseName"`
		Subtitle    string             `json:"subtitle" bson:"subtitle"`
		Image       string             `json:"image" bson:"image"`
		Banner      string             `json:"banner" bson:"banner"`
		Details     string             `json:"details" bson:"details"`
		Description string             `json:"description" bson:"description"`
		Preview     string             `json:"preview" bson:"preview"`
		Skills      []string           `json:"skills" bson:"skills"`
		Eligibility []string           `json:"eligibility" bson:"eligibility"`
		Duration    string             `json:"duration" bson:"duration"`
		Students    int                `json:"students" bson:"students"`
		Fees        Fees               `json:"fees" bson:"fees"`
		Rating      float64            `json:"rating" bson:"rating"`
		Reviews     int                `json:"reviews" bson:"reviews"`
		Instructor  string             `json:"instructor" bson:"instructor"`
		Syllabus    []SyllabusModule   `json:"syllabus" bson:"syllabus"`
		Benefits    []string           `json:"benefits" bson:"benefits"`
		Certificate Certificate        `json:"certificate" bson:"certificate"`
		Features    []string           `json:"features" bson:"features"`
		CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"` // UTC
	}

	// Category is the unit of persistence; it owns its embedded courses.
	Category struct {
		ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
		Category string             `json:"category" bson:"category"`
		Icon     string             `json:"icon" bson:"icon"`
		Courses  []Course           `json:"courses" bson:"courses"`
	}

	// CourseDetail is a course flattened together with its owning
	// category's name.
	CourseDetail struct {
		Category string `json:"category"`
		Course
	}
)

// NewCourse contains information needed to add a course to the catalog.
// Category names the owning category, created on the fly when missing.
type NewCourse struct {
	Category    string           `json:"category" validate:"required"`
	Icon        string           `json:"icon"`
	CourseCode  string           `json:"courseCode" validate:"required,coursecode"`
	CourseName  string           `json:"courseName" validate:"required"`
	Subtitle    string           `json:"subtitle"`
	Image       string           `json:"image"`
	Banner      string           `json:"banner"`
	Details     string           `json:"details"`
	Description string           `json:"description"`
	Preview     string           `json:"preview"`
	Skills      []string         `json:"skills"`
	Eligibility []string         `json:"eligibility"`
	Duration    string           `json:"duration"`
	Students    int              `json:"students" validate:"gte=0"`
	Fees        Fees             `json:"fees"`
	Rating      float64          `json:"rating" validate:"gte=0,lte=5"`
	Reviews     int              `json:"reviews" validate:"gte=0"`
	Instructor  string           `json:"instructor"`
	Syllabus    []SyllabusModule `json:"syllabus" validate:"dive"`
	Benefits    []string         `json:"benefits"`
	Certificate Certificate      `json:"certificate"`
	Features    []string         `json:"features"`
}

func (nc *NewCourse) Validate() error {
	nc.Category = core.CleanString(nc.Category)
	nc.CourseCode = core.CleanString(nc.CourseCode)
	nc.CourseName = core.CleanString(nc.CourseName)
	return core.Validate.Struct(nc)
}

// course materializes the embedded record, minting its internal id and
// applying defaults.
func (nc *NewCourse) course() Course {
	crs := Course{
		ID:          primitive.NewObjectID(),
		CourseCode:  nc.CourseCode,
		CourseName:  nc.CourseName,
		Subtitle:    nc.Subtitle,
		Image:       nc.Image,
		Banner:      nc.Banner,
		Details:     nc.Details,
		Description: nc.Description,
		Preview:     nc.Preview,
		Skills:      nc.Skills,
		Eligibility: nc.Eligibility,
		Duration:    nc.Duration,
		Students:    nc.Students,
		Fees:        nc.Fees,
		Rating:      nc.Rating,
		Reviews:     nc.Reviews,
		Instructor:  nc.Instructor,
		Syllabus:    nc.Syllabus,
		Benefits:    nc.Benefits,
		Certificate: nc.Certificate,
		Features:    nc.Features,
		CreatedAt:   time.Now().UTC(),
	}
	if crs.Fees.Currency == "" {
		crs.Fees.Currency = defaultCurrency
	}
	return crs
}

// UpdateCourse defines what information may be provided to modify an
// embedded course. nil fields keep their previous value; CourseCode itself
// may be changed.
type UpdateCourse struct {
	CourseCode  *string          `json:"courseCode" validate:"omitempty,coursecode"`
	CourseName  *string          `json:"courseName"`
	Subtitle    *string          `json:"subtitle"`
	Image       *string          `json:"image"`
	Banner      *string          `json:"banner"`
	Details     *string          `json:"details"`
	Description *string          `json:"description"`
	Preview     *string          `json:"preview"`
	Skills      []string         `json:"skills"`
	Eligibility []string         `json:"eligibility"`
	Duration    *string          `json:"duration"`
	Students    *int             `json:"students" validate:"omitempty,gte=0"`
	Fees        *Fees            `json:"fees"`
	Rating      *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews     *int             `json:"reviews" validate:"omitempty,gte=0"`
	Instructor  *string          `json:"instructor"`
	Syllabus    []SyllabusModule `json:"syllabus" validate:"omitempty,dive"`
	Benefits    []string         `json:"benefits"`
	Certificate *Certificate     `json:"certificate"`
	Features    []string         `json:"features"`
}

func (uc *UpdateCourse) Validate() error {
	if uc.CourseCode != nil {
		code := core.CleanString(*uc.CourseCode)
		uc.CourseCode = &code
	}
	return core.Validate.Struct(uc)
}

// apply merges the update into crs, preserving anything not provided.
func (uc *UpdateCourse) apply(crs Course) Course {
	if uc.CourseCode != nil {
		crs.CourseCode = *uc.CourseCode
	}
	if uc.CourseName != nil {
		crs.CourseName = *uc.CourseName
	}
	if uc.Subtitle != nil {
		crs.Subtitle = *uc.Subtitle
	}
	if uc.Image != nil {
		crs.Image = *uc.Image
	}
	if uc.Banner != nil {
		crs.Banner = *uc.Banner
	}
	if uc.Details != nil {
		crs.Details = *uc.Details
	}
	if uc.Description != nil {
		crs.Description = *uc.Description
	}
	if uc.Preview != nil {
		crs.Preview = *uc.Preview
	}
	if uc.Skills != nil {
		crs.Skills = uc.Skills
	}
	if uc.Eligibility != nil {
		crs.Eligibility = uc.Eligibility
	}
	if uc.Duration != nil {
		crs.Duration = *uc.Duration
	}
	if uc.Students != nil {
		crs.Students = *uc.Students
	}
	if uc.Fees != nil {
		crs.Fees = *uc.Fees
		if crs.Fees.Currency == "" {
			crs.Fees.Currency = defaultCurrency
		}
	}
	if uc.Rating != nil {
		crs.Rating = *uc.Rating
	}
	if uc.Reviews != nil {
		crs.Reviews = *uc.Reviews
	}
	if uc.Instructor != nil {
		crs.Instructor = *uc.Instructor
	}
	if uc.Syllabus != nil {
		crs.Syllabus = uc.Syllabus
	}
	if uc.Benefits != nil {
		crs.Benefits = uc.Benefits
	}
	if uc.Certificate != nil {
		crs.Certificate = *uc.Certificate
	}
	if uc.Features != nil {
		crs.Features = uc.Features
	}
	return crs
}
