package siri

import "github.com/reoring/sirisx/dsl"

// SourceType is how the situation was reported.
type SourceType string

const (
	SourceTypeDirectReport SourceType = "directReport"
	SourceTypeEmail        SourceType = "email"
	SourceTypePhone        SourceType = "phone"
	SourceTypeFax          SourceType = "fax"
	SourceTypePost         SourceType = "post"
	SourceTypeFeed         SourceType = "feed"
	SourceTypeRadio        SourceType = "radio"
	SourceTypeTv           SourceType = "tv"
	SourceTypeWeb          SourceType = "web"
	SourceTypePager        SourceType = "pager"
	SourceTypeText         SourceType = "text"
	SourceTypeOther        SourceType = "other"
)

// Progress is the editorial status of a situation.
type Progress string

const (
	ProgressDraft                Progress = "draft"
	ProgressOpen                 Progress = "open"
	ProgressPublished            Progress = "published"
	ProgressClosing              Progress = "closing"
	ProgressClosed               Progress = "closed"
	ProgressPendingApproval      Progress = "pendingApproval"
	ProgressEditPendingApproval  Progress = "editPendingApproval"
	ProgressDraftPendingApproval Progress = "draftPendingApproval"
	ProgressRejected             Progress = "rejected"
)

// MiscellaneousReason is a miscellaneous reason sub-code.
type MiscellaneousReason string

const (
	MiscellaneousReasonAccident              MiscellaneousReason = "accident"
	MiscellaneousReasonSecurityAlert         MiscellaneousReason = "securityAlert"
	MiscellaneousReasonCongestion            MiscellaneousReason = "congestion"
	MiscellaneousReasonRoadClosed            MiscellaneousReason = "roadClosed"
	MiscellaneousReasonIncident              MiscellaneousReason = "incident"
	MiscellaneousReasonRouteDiversion        MiscellaneousReason = "routeDiversion"
	MiscellaneousReasonUnknown               MiscellaneousReason = "unknown"
	MiscellaneousReasonVandalism             MiscellaneousReason = "vandalism"
	MiscellaneousReasonOvercrowded           MiscellaneousReason = "overcrowded"
	MiscellaneousReasonOperatorCeasedTrading MiscellaneousReason = "operatorCeasedTrading"
	MiscellaneousReasonVegetation            MiscellaneousReason = "vegetation"
	MiscellaneousReasonRoadworks             MiscellaneousReason = "roadworks"
	MiscellaneousReasonSpecialEvent          MiscellaneousReason = "specialEvent"
	MiscellaneousReasonInsufficientDemand    MiscellaneousReason = "insufficientDemand"
)

// PersonnelReason is a personnel reason sub-code.
type PersonnelReason string

const (
	PersonnelReasonUnknown                    PersonnelReason = "unknown"
	PersonnelReasonStaffSickness              PersonnelReason = "staffSickness"
	PersonnelReasonStaffInjury                PersonnelReason = "staffInjury"
	PersonnelReasonContractorStaffInjury      PersonnelReason = "contractorStaffInjury"
	PersonnelReasonStaffAbsence               PersonnelReason = "staffAbsence"
	PersonnelReasonStaffInWrongPlace          PersonnelReason = "staffInWrongPlace"
	PersonnelReasonStaffShortage              PersonnelReason = "staffShortage"
	PersonnelReasonIndustrialAction           PersonnelReason = "industrialAction"
	PersonnelReasonUnofficialIndustrialAction PersonnelReason = "unofficialIndustrialAction"
	PersonnelReasonWorkToRule                 PersonnelReason = "workToRule"
	PersonnelReasonUndefinedPersonnelProblem  PersonnelReason = "undefinedPersonnelProblem"
)

// EquipmentReason is a equipment reason sub-code.
type EquipmentReason string

const (
	EquipmentReasonUnknown                           EquipmentReason = "unknown"
	EquipmentReasonPointsFailure                     EquipmentReason = "pointsFailure"
	EquipmentReasonSignalProblem                     EquipmentReason = "signalProblem"
	EquipmentReasonTrainWarningSystemProblem         EquipmentReason = "trainWarningSystemProblem"
	EquipmentReasonTrackCircuitProblem               EquipmentReason = "trackCircuitProblem"
	EquipmentReasonSignalFailure                     EquipmentReason = "signalFailure"
	EquipmentReasonDerailment                        EquipmentReason = "derailment"
	EquipmentReasonEngineFailure                     EquipmentReason = "engineFailure"
	EquipmentReasonTractionFailure                   EquipmentReason = "tractionFailure"
	EquipmentReasonBreakDown                         EquipmentReason = "breakDown"
	EquipmentReasonTechnicalProblem                  EquipmentReason = "technicalProblem"
	EquipmentReasonBrokenRail                        EquipmentReason = "brokenRail"
	EquipmentReasonPoorRailConditions                EquipmentReason = "poorRailConditions"
	EquipmentReasonWheelImpactLoad                   EquipmentReason = "wheelImpactLoad"
	EquipmentReasonLackOfOperationalStock            EquipmentReason = "lackOfOperationalStock"
	EquipmentReasonDefectiveFireAlarmEquipment       EquipmentReason = "defectiveFireAlarmEquipment"
	EquipmentReasonDefectivePlatformEdgeDoors        EquipmentReason = "defectivePlatformEdgeDoors"
	EquipmentReasonDefectiveCctv                     EquipmentReason = "defectiveCctv"
	EquipmentReasonDefectivePublicAnnouncementSystem EquipmentReason = "defectivePublicAnnouncementSystem"
	EquipmentReasonTicketingSystemNotAvailable       EquipmentReason = "ticketingSystemNotAvailable"
	EquipmentReasonRepairWork                        EquipmentReason = "repairWork"
	EquipmentReasonConstructionWork                  EquipmentReason = "constructionWork"
	EquipmentReasonMaintenanceWork                   EquipmentReason = "maintenanceWork"
	EquipmentReasonEmergencyEngineeringWork          EquipmentReason = "emergencyEngineeringWork"
	EquipmentReasonLateFinishToEngineeringWork       EquipmentReason = "lateFinishToEngineeringWork"
	EquipmentReasonPowerProblem                      EquipmentReason = "powerProblem"
	EquipmentReasonFuelProblem                       EquipmentReason = "fuelProblem"
	EquipmentReasonSwingBridgeFailure                EquipmentReason = "swingBridgeFailure"
	EquipmentReasonEscalatorFailure                  EquipmentReason = "escalatorFailure"
	EquipmentReasonLiftFailure                       EquipmentReason = "liftFailure"
	EquipmentReasonGangwayProblem                    EquipmentReason = "gangwayProblem"
	EquipmentReasonClosedForMaintenance              EquipmentReason = "closedForMaintenance"
	EquipmentReasonFuelShortage                      EquipmentReason = "fuelShortage"
	EquipmentReasonDeicingWork                       EquipmentReason = "deicingWork"
	EquipmentReasonWheelProblem                      EquipmentReason = "wheelProblem"
	EquipmentReasonLuggageCarouselProblem            EquipmentReason = "luggageCarouselProblem"
	EquipmentReasonUndefinedEquipmentProblem         EquipmentReason = "undefinedEquipmentProblem"
)

// EnvironmentReason is a environment reason sub-code.
type EnvironmentReason string

const (
	EnvironmentReasonUnknown                       EnvironmentReason = "unknown"
	EnvironmentReasonFog                           EnvironmentReason = "fog"
	EnvironmentReasonRoughSea                      EnvironmentReason = "roughSea"
	EnvironmentReasonHeavySnowFall                 EnvironmentReason = "heavySnowFall"
	EnvironmentReasonDriftingSnow                  EnvironmentReason = "driftingSnow"
	EnvironmentReasonBlizzardConditions            EnvironmentReason = "blizzardConditions"
	EnvironmentReasonHeavyRain                     EnvironmentReason = "heavyRain"
	EnvironmentReasonStrongWinds                   EnvironmentReason = "strongWinds"
	EnvironmentReasonStormConditions               EnvironmentReason = "stormConditions"
	EnvironmentReasonStormDamage                   EnvironmentReason = "stormDamage"
	EnvironmentReasonTidalRestrictions             EnvironmentReason = "tidalRestrictions"
	EnvironmentReasonHighTide                      EnvironmentReason = "highTide"
	EnvironmentReasonLowTide                       EnvironmentReason = "lowTide"
	EnvironmentReasonIce                           EnvironmentReason = "ice"
	EnvironmentReasonFrozen                        EnvironmentReason = "frozen"
	EnvironmentReasonHail                          EnvironmentReason = "hail"
	EnvironmentReasonSleet                         EnvironmentReason = "sleet"
	EnvironmentReasonHighTemperatures              EnvironmentReason = "highTemperatures"
	EnvironmentReasonFlooding                      EnvironmentReason = "flooding"
	EnvironmentReasonWaterlogged                   EnvironmentReason = "waterlogged"
	EnvironmentReasonLowWaterLevel                 EnvironmentReason = "lowWaterLevel"
	EnvironmentReasonHighWaterLevel                EnvironmentReason = "highWaterLevel"
	EnvironmentReasonFallenLeaves                  EnvironmentReason = "fallenLeaves"
	EnvironmentReasonFallenTree                    EnvironmentReason = "fallenTree"
	EnvironmentReasonLandslide                     EnvironmentReason = "landslide"
	EnvironmentReasonUndefinedEnvironmentalProblem EnvironmentReason = "undefinedEnvironmentalProblem"
	EnvironmentReasonLightningStrike               EnvironmentReason = "lightningStrike"
	EnvironmentReasonSewerOverflow                 EnvironmentReason = "sewerOverflow"
	EnvironmentReasonGrassFire                     EnvironmentReason = "grassFire"
)

// DayType is a day of the week a situation repeats on.
type DayType string

const (
	DayTypeMonday    DayType = "monday"
	DayTypeTuesday   DayType = "tuesday"
	DayTypeWednesday DayType = "wednesday"
	DayTypeThursday  DayType = "thursday"
	DayTypeFriday    DayType = "friday"
	DayTypeSaturday  DayType = "saturday"
	DayTypeSunday    DayType = "sunday"
)

// VehicleMode is the transport mode of an affected network or stop.
type VehicleMode string

const (
	VehicleModeBus          VehicleMode = "bus"
	VehicleModeTram         VehicleMode = "tram"
	VehicleModeFerryService VehicleMode = "ferryService"
	VehicleModeRail         VehicleMode = "rail"
	VehicleModeUnderground  VehicleMode = "underground"
)

// Severity is the impact level of a consequence.
type Severity string

const (
	SeverityUnknown    Severity = "unknown"
	SeverityNormal     Severity = "normal"
	SeverityVerySlight Severity = "verySlight"
	SeveritySlight     Severity = "slight"
	SeveritySevere     Severity = "severe"
	SeverityVerySevere Severity = "verySevere"
)

// Condition is the service condition a consequence describes.
type Condition string

const (
	ConditionUnknown   Condition = "unknown"
	ConditionCancelled Condition = "cancelled"
)

// DirectionRef is the direction of an affected line.
type DirectionRef string

const (
	DirectionRefInboundTowardsTown DirectionRef = "inboundTowardsTown"
	DirectionRefOutboundFromTown   DirectionRef = "outboundFromTown"
)

var (
	sourceTypeEnum          = dsl.Enum(SourceTypeDirectReport, SourceTypeEmail, SourceTypePhone, SourceTypeFax, SourceTypePost, SourceTypeFeed, SourceTypeRadio, SourceTypeTv, SourceTypeWeb, SourceTypePager, SourceTypeText, SourceTypeOther)
	progressEnum            = dsl.Enum(ProgressDraft, ProgressOpen, ProgressPublished, ProgressClosing, ProgressClosed, ProgressPendingApproval, ProgressEditPendingApproval, ProgressDraftPendingApproval, ProgressRejected)
	miscellaneousReasonEnum = dsl.Enum(MiscellaneousReasonAccident, MiscellaneousReasonSecurityAlert, MiscellaneousReasonCongestion, MiscellaneousReasonRoadClosed, MiscellaneousReasonIncident, MiscellaneousReasonRouteDiversion, MiscellaneousReasonUnknown, MiscellaneousReasonVandalism, MiscellaneousReasonOvercrowded, MiscellaneousReasonOperatorCeasedTrading, MiscellaneousReasonVegetation, MiscellaneousReasonRoadworks, MiscellaneousReasonSpecialEvent, MiscellaneousReasonInsufficientDemand)
	personnelReasonEnum     = dsl.Enum(PersonnelReasonUnknown, PersonnelReasonStaffSickness, PersonnelReasonStaffInjury, PersonnelReasonContractorStaffInjury, PersonnelReasonStaffAbsence, PersonnelReasonStaffInWrongPlace, PersonnelReasonStaffShortage, PersonnelReasonIndustrialAction, PersonnelReasonUnofficialIndustrialAction, PersonnelReasonWorkToRule, PersonnelReasonUndefinedPersonnelProblem)
	equipmentReasonEnum     = dsl.Enum(EquipmentReasonUnknown, EquipmentReasonPointsFailure, EquipmentReasonSignalProblem, EquipmentReasonTrainWarningSystemProblem, EquipmentReasonTrackCircuitProblem, EquipmentReasonSignalFailure, EquipmentReasonDerailment, EquipmentReasonEngineFailure, EquipmentReasonTractionFailure, EquipmentReasonBreakDown, EquipmentReasonTechnicalProblem, EquipmentReasonBrokenRail, EquipmentReasonPoorRailConditions, EquipmentReasonWheelImpactLoad, EquipmentReasonLackOfOperationalStock, EquipmentReasonDefectiveFireAlarmEquipment, EquipmentReasonDefectivePlatformEdgeDoors, EquipmentReasonDefectiveCctv, EquipmentReasonDefectivePublicAnnouncementSystem, EquipmentReasonTicketingSystemNotAvailable, EquipmentReasonRepairWork, EquipmentReasonConstructionWork, EquipmentReasonMaintenanceWork, EquipmentReasonEmergencyEngineeringWork, EquipmentReasonLateFinishToEngineeringWork, EquipmentReasonPowerProblem, EquipmentReasonFuelProblem, EquipmentReasonSwingBridgeFailure, EquipmentReasonEscalatorFailure, EquipmentReasonLiftFailure, EquipmentReasonGangwayProblem, EquipmentReasonClosedForMaintenance, EquipmentReasonFuelShortage, EquipmentReasonDeicingWork, EquipmentReasonWheelProblem, EquipmentReasonLuggageCarouselProblem, EquipmentReasonUndefinedEquipmentProblem)
	environmentReasonEnum   = dsl.Enum(EnvironmentReasonUnknown, EnvironmentReasonFog, EnvironmentReasonRoughSea, EnvironmentReasonHeavySnowFall, EnvironmentReasonDriftingSnow, EnvironmentReasonBlizzardConditions, EnvironmentReasonHeavyRain, EnvironmentReasonStrongWinds, EnvironmentReasonStormConditions, EnvironmentReasonStormDamage, EnvironmentReasonTidalRestrictions, EnvironmentReasonHighTide, EnvironmentReasonLowTide, EnvironmentReasonIce, EnvironmentReasonFrozen, EnvironmentReasonHail, EnvironmentReasonSleet, EnvironmentReasonHighTemperatures, EnvironmentReasonFlooding, EnvironmentReasonWaterlogged, EnvironmentReasonLowWaterLevel, EnvironmentReasonHighWaterLevel, EnvironmentReasonFallenLeaves, EnvironmentReasonFallenTree, EnvironmentReasonLandslide, EnvironmentReasonUndefinedEnvironmentalProblem, EnvironmentReasonLightningStrike, EnvironmentReasonSewerOverflow, EnvironmentReasonGrassFire)
	dayTypeEnum             = dsl.Enum(DayTypeMonday, DayTypeTuesday, DayTypeWednesday, DayTypeThursday, DayTypeFriday, DayTypeSaturday, DayTypeSunday)
	vehicleModeEnum         = dsl.Enum(VehicleModeBus, VehicleModeTram, VehicleModeFerryService, VehicleModeRail, VehicleModeUnderground)
	severityEnum            = dsl.Enum(SeverityUnknown, SeverityNormal, SeverityVerySlight, SeveritySlight, SeveritySevere, SeverityVerySevere)
	conditionEnum           = dsl.Enum(ConditionUnknown, ConditionCancelled)
	directionRefEnum        = dsl.Enum(DirectionRefInboundTowardsTown, DirectionRefOutboundFromTown)
)

// SourceTypeValues returns the allowed SourceType values in wire order.
func SourceTypeValues() []SourceType { return sourceTypeEnum.Values() }

// ProgressValues returns the allowed Progress values in wire order.
func ProgressValues() []Progress { return progressEnum.Values() }

// MiscellaneousReasonValues returns the allowed MiscellaneousReason values in wire order.
func MiscellaneousReasonValues() []MiscellaneousReason { return miscellaneousReasonEnum.Values() }

// PersonnelReasonValues returns the allowed PersonnelReason values in wire order.
func PersonnelReasonValues() []PersonnelReason { return personnelReasonEnum.Values() }

// EquipmentReasonValues returns the allowed EquipmentReason values in wire order.
func EquipmentReasonValues() []EquipmentReason { return equipmentReasonEnum.Values() }

// EnvironmentReasonValues returns the allowed EnvironmentReason values in wire order.
func EnvironmentReasonValues() []EnvironmentReason { return environmentReasonEnum.Values() }

// DayTypeValues returns the allowed DayType values in wire order.
func DayTypeValues() []DayType { return dayTypeEnum.Values() }

// VehicleModeValues returns the allowed VehicleMode values in wire order.
func VehicleModeValues() []VehicleMode { return vehicleModeEnum.Values() }

// SeverityValues returns the allowed Severity values in wire order.
func SeverityValues() []Severity { return severityEnum.Values() }

// ConditionValues returns the allowed Condition values in wire order.
func ConditionValues() []Condition { return conditionEnum.Values() }

// DirectionRefValues returns the allowed DirectionRef values in wire order.
func DirectionRefValues() []DirectionRef { return directionRefEnum.Values() }
