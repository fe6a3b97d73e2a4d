package siri

// ReasonType names the category of a situation's reason. On the wire it is the
// discriminator that selects which sub-code field is present.
type ReasonType string

const (
	ReasonTypeMiscellaneous ReasonType = "MiscellaneousReason"
	ReasonTypePersonnel     ReasonType = "PersonnelReason"
	ReasonTypeEquipment     ReasonType = "EquipmentReason"
	ReasonTypeEnvironment   ReasonType = "EnvironmentReason"
)

// ReasonTypes lists the categories in wire order.
func ReasonTypes() []ReasonType {
	return []ReasonType{ReasonTypeMiscellaneous, ReasonTypePersonnel, ReasonTypeEquipment, ReasonTypeEnvironment}
}

// Reason is the sub-code of a situation's cause. It is implemented only by
// MiscellaneousReason, PersonnelReason, EquipmentReason and EnvironmentReason,
// so a Reason always carries exactly one category.
type Reason interface {
	ReasonType() ReasonType
	String() string
	isReason()
}

func (MiscellaneousReason) ReasonType() ReasonType { return ReasonTypeMiscellaneous }
func (PersonnelReason) ReasonType() ReasonType     { return ReasonTypePersonnel }
func (EquipmentReason) ReasonType() ReasonType     { return ReasonTypeEquipment }
func (EnvironmentReason) ReasonType() ReasonType   { return ReasonTypeEnvironment }

func (r MiscellaneousReason) String() string { return string(r) }
func (r PersonnelReason) String() string     { return string(r) }
func (r EquipmentReason) String() string     { return string(r) }
func (r EnvironmentReason) String() string   { return string(r) }

func (MiscellaneousReason) isReason() {}
func (PersonnelReason) isReason()     {}
func (EquipmentReason) isReason()     {}
func (EnvironmentReason) isReason()   {}

// ReasonTypeOf returns the category of r, or "" for a nil Reason.
func ReasonTypeOf(r Reason) ReasonType {
	if r == nil {
		return ""
	}
	return r.ReasonType()
}
