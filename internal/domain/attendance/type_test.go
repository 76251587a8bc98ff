package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_IsLeave(t *testing.T) {
	leave := []Type{
		TypeEmergencyLeave,
		TypeSickLeave,
		TypePlannedLeave,
		TypeMaternityLeave,
		TypePaternityLeave,
		TypeCasualLeave,
		TypeAnnualLeave,
		TypeCompensatoryOff,
	}
	for _, typ := range leave {
		assert.True(t, typ.IsLeave(), "%s must be leave category", typ)
	}

	assert.False(t, TypeWFO.IsLeave())
	assert.False(t, TypeWFH.IsLeave())

	// Unknown types never classify as leave.
	assert.False(t, Type("Holiday Leave").IsLeave())
}

func TestType_IsValid(t *testing.T) {
	for _, typ := range Types {
		assert.True(t, typ.IsValid(), "%s must be valid", typ)
	}

	assert.False(t, Type("").IsValid())
	assert.False(t, Type("wfo").IsValid())
	assert.False(t, Type("Sabbatical").IsValid())
}

func TestTypeNames(t *testing.T) {
	names := TypeNames()
	assert.Len(t, names, len(Types))
	assert.Contains(t, names, "WFO")
	assert.Contains(t, names, "Compensatory Off")
}
