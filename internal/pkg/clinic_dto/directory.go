package clinic_dto

// DoctorEntry holds the two attributes a bill row needs from its doctor.
type DoctorEntry struct {
	Name      string  `json:"name"`
	Specialty *string `json:"specialty"`
}

// DoctorDirectory maps doctor id to name and specialty.
type DoctorDirectory map[int64]DoctorEntry

func (d DoctorDirectory) Lookup(doctorID *int64) (DoctorEntry, bool) {
	if doctorID == nil || d == nil {
		return DoctorEntry{}, false
	}
	entry, ok := d[*doctorID]
	return entry, ok
}

// DoctorNameFor prefers the name the backend joined onto the invoice.
func (d DoctorDirectory) DoctorNameFor(invoice Invoice) (string, bool) {
	if invoice.DoctorName != nil && *invoice.DoctorName != "" {
		return *invoice.DoctorName, true
	}
	if entry, ok := d.Lookup(invoice.DoctorID); ok {
		return entry.Name, true
	}
	return "", false
}
