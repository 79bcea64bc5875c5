package clinic_dto

// Student and Enrollment back the legacy profile page, read only.
type Student struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Year  *int    `json:"year"`
}

type Enrollment struct {
	EnrollmentID  *int64   `json:"enrollment_id"`
	CourseTitle   *string  `json:"course_title"`
	CourseCode    *string  `json:"course_code"`
	Code          *string  `json:"code,omitempty"`
	TeacherName   *string  `json:"teacher_name"`
	Fees          *float64 `json:"fees"`
	DurationWeeks *int     `json:"duration_weeks"`
	EnrolledOn    *string  `json:"enrolled_on"`
}

// CourseCodeOrAlias prefers course_code and falls back to the older code field.
func (e Enrollment) CourseCodeOrAlias() *string {
	if e.CourseCode != nil {
		return e.CourseCode
	}
	return e.Code
}
