package attendance

type Type string

const (
	TypeWFO             Type = "WFO"
	TypeWFH             Type = "WFH"
	TypeEmergencyLeave  Type = "Emergency Leave"
	TypeSickLeave       Type = "Sick Leave"
	TypePlannedLeave    Type = "Planned Leave"
	TypeMaternityLeave  Type = "Maternity Leave"
	TypePaternityLeave  Type = "Paternity Leave"
	TypeCasualLeave     Type = "Casual Leave"
	TypeAnnualLeave     Type = "Annual Leave"
	TypeCompensatoryOff Type = "Compensatory Off"
)

// Types lists every valid attendance type, in display order.
var Types = []Type{
	TypeWFO,
	TypeWFH,
	TypeEmergencyLeave,
	TypeSickLeave,
	TypePlannedLeave,
	TypeMaternityLeave,
	TypePaternityLeave,
	TypeCasualLeave,
	TypeAnnualLeave,
	TypeCompensatoryOff,
}

// leaveTypes marks the variants that record an absence rather than a
// working location. Membership is explicit per variant; nothing ever
// matches on the type's name. Compensatory Off counts as leave.
var leaveTypes = map[Type]bool{
	TypeEmergencyLeave:  true,
	TypeSickLeave:       true,
	TypePlannedLeave:    true,
	TypeMaternityLeave:  true,
	TypePaternityLeave:  true,
	TypeCasualLeave:     true,
	TypeAnnualLeave:     true,
	TypeCompensatoryOff: true,
}

// IsLeave reports whether t belongs to the leave category. Leave
// types are submitted over a date range instead of a single day.
func (t Type) IsLeave() bool {
	return leaveTypes[t]
}

// IsValid reports whether t is one of the closed set of types.
func (t Type) IsValid() bool {
	for _, valid := range Types {
		if t == valid {
			return true
		}
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// TypeNames returns the valid type names as strings.
func TypeNames() []string {
	names := make([]string, 0, len(Types))
	for _, t := range Types {
		names = append(names, string(t))
	}
	return names
}
