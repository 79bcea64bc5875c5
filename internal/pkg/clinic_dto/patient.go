package clinic_dto

import (
	"math"
	"strings"
	"time"
)

const secondsPerYear = 365.25 * 24 * 60 * 60

type Patient struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       *int    `json:"age"`
	Gender    *string `json:"gender"`
	Phone     string  `json:"phone"`
	DOB       *string `json:"dob,omitempty"`
	CreatedAt *string `json:"created_at,omitempty"`
}

func (p Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// DeriveAge returns the stored age, or the whole years of 365.25 days
// elapsed since dob. A missing, unparsable or future dob yields nil.
func (p Patient) DeriveAge(now time.Time) *int {
	if p.Age != nil {
		age := *p.Age
		return &age
	}
	if p.DOB == nil {
		return nil
	}
	born, ok := ParseTimestamp(*p.DOB)
	if !ok {
		return nil
	}
	// Unix seconds, since a time.Duration saturates at about 292 years.
	elapsed := now.Unix() - born.Unix()
	if elapsed < 0 {
		return nil
	}
	age := int(math.Floor(float64(elapsed) / secondsPerYear))
	return &age
}

type PatientRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       *int    `json:"age"`
	Gender    *string `json:"gender"`
	Phone     string  `json:"phone"`
}
