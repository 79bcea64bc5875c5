package clinic_dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorDirectoryDoctorNameFor(t *testing.T) {
	doctorID := int64(7)
	unknownID := int64(3)
	joined := "Joined"
	directory := DoctorDirectory{7: {Name: "A"}}

	name, ok := directory.DoctorNameFor(Invoice{DoctorID: &doctorID, DoctorName: &joined})
	assert.True(t, ok)
	assert.Equal(t, "Joined", name)

	name, ok = directory.DoctorNameFor(Invoice{DoctorID: &doctorID})
	assert.True(t, ok)
	assert.Equal(t, "A", name)

	_, ok = directory.DoctorNameFor(Invoice{DoctorID: &unknownID})
	assert.False(t, ok)

	_, ok = directory.DoctorNameFor(Invoice{})
	assert.False(t, ok)
}
