package siri

import sirisx "github.com/reoring/sirisx"

// Field names mirror the SIRI element names verbatim so that a decoded value
// encodes back to the same JSON document. Optional fields are pointers and
// stay nil when the input omits them.

// Source records how and when the situation was reported.
type Source struct {
	SourceType          SourceType      `json:"SourceType"`
	TimeOfCommunication sirisx.DateTime `json:"TimeOfCommunication"`
}

// Period is a time window. An absent EndTime means open-ended.
type Period struct {
	StartTime sirisx.DateTime  `json:"StartTime"`
	EndTime   *sirisx.DateTime `json:"EndTime,omitempty"`
}

// Contains reports whether t falls inside the window, bounds included.
func (p Period) Contains(t sirisx.DateTime) bool {
	if t.Before(p.StartTime) {
		return false
	}
	return p.EndTime == nil || !p.EndTime.Before(t)
}

// InfoLink is a link to further information about the situation.
type InfoLink struct {
	Uri string `json:"Uri"`
}

// InfoLinks wraps the InfoLink list.
type InfoLinks struct {
	InfoLink []InfoLink `json:"InfoLink"`
}

// SituationElementRef points at another situation. It is not resolved.
type SituationElementRef struct {
	CreationTime    *sirisx.DateTime `json:"CreationTime,omitempty"`
	VersionedAtTime *sirisx.DateTime `json:"VersionedAtTime,omitempty"`
	ParticipantRef  string           `json:"ParticipantRef"`
	SituationNumber string           `json:"SituationNumber"`
}

// Key returns the identity of the referenced situation.
func (r SituationElementRef) Key() SituationKey {
	return SituationKey{ParticipantRef: r.ParticipantRef, SituationNumber: r.SituationNumber}
}

// References lists situations this one relates to.
type References struct {
	RelatedToRef []SituationElementRef `json:"RelatedToRef"`
}

// Repetitions names the day types on which the validity periods recur.
type Repetitions struct {
	DayType []DayType `json:"DayType"`
}

// AffectedOperator identifies an operator touched by the situation.
type AffectedOperator struct {
	OperatorRef  string  `json:"OperatorRef"`
	OperatorName *string `json:"OperatorName,omitempty"`
}

// Operators scopes a consequence to operators. AllOperators is the empty
// marker element <AllOperators/>.
type Operators struct {
	AllOperators     *string             `json:"AllOperators,omitempty"`
	AffectedOperator *[]AffectedOperator `json:"AffectedOperator,omitempty"`
}

// Direction restricts an affected line to one direction of travel.
type Direction struct {
	DirectionRef DirectionRef `json:"DirectionRef"`
}

// AffectedLine is a line within an affected network.
type AffectedLine struct {
	AffectedOperator  *AffectedOperator `json:"AffectedOperator,omitempty"`
	LineRef           string            `json:"LineRef"`
	PublishedLineName string            `json:"PublishedLineName"`
	Direction         *Direction        `json:"Direction,omitempty"`
}

// AffectedNetwork groups affected lines of one vehicle mode.
type AffectedNetwork struct {
	VehicleMode  VehicleMode     `json:"VehicleMode"`
	AllLines     *string         `json:"AllLines,omitempty"`
	AffectedLine *[]AffectedLine `json:"AffectedLine,omitempty"`
}

type Networks struct {
	AffectedNetwork AffectedNetwork `json:"AffectedNetwork"`
}

type AffectedPlace struct {
	PlaceRef      string `json:"PlaceRef"`
	PlaceName     string `json:"PlaceName"`
	PlaceCategory string `json:"PlaceCategory"`
}

type Places struct {
	AffectedPlace []AffectedPlace `json:"AffectedPlace"`
}

// Location is a WGS84 coordinate pair.
type Location struct {
	Longitude float64 `json:"Longitude"`
	Latitude  float64 `json:"Latitude"`
}

type Mode struct {
	VehicleMode VehicleMode `json:"VehicleMode"`
}

type AffectedModes struct {
	Mode Mode `json:"Mode"`
}

type AffectedStopPoint struct {
	StopPointRef  string        `json:"StopPointRef"`
	StopPointName string        `json:"StopPointName"`
	Location      Location      `json:"Location"`
	AffectedModes AffectedModes `json:"AffectedModes"`
}

type StopPoints struct {
	AffectedStopPoint []AffectedStopPoint `json:"AffectedStopPoint"`
}

type AffectedVehicleJourney struct {
	VehicleJourneyRef        string `json:"VehicleJourneyRef"`
	Route                    string `json:"Route"`
	OriginAimedDepartureTime string `json:"OriginAimedDepartureTime"`
}

type VehicleJourneys struct {
	AffectedVehicleJourney []AffectedVehicleJourney `json:"AffectedVehicleJourney"`
}

// Affects is the scope of a consequence. Every part is optional and an
// entirely empty Affects is valid.
type Affects struct {
	Operators       *Operators       `json:"Operators,omitempty"`
	Networks        *Networks        `json:"Networks,omitempty"`
	Places          *Places          `json:"Places,omitempty"`
	StopPoints      *StopPoints      `json:"StopPoints,omitempty"`
	VehicleJourneys *VehicleJourneys `json:"VehicleJourneys,omitempty"`
}

type Advice struct {
	Details string `json:"Details"`
}

type Blocking struct {
	JourneyPlanner bool `json:"JourneyPlanner"`
}

// Delays carries a duration such as "PT10M". The value is not interpreted.
type Delays struct {
	Delay string `json:"Delay"`
}

// Consequence describes one effect of the situation on the network.
type Consequence struct {
	Condition Condition `json:"Condition"`
	Severity  Severity  `json:"Severity"`
	Affects   Affects   `json:"Affects"`
	Advice    Advice    `json:"Advice"`
	Blocking  Blocking  `json:"Blocking"`
	Delays    *Delays   `json:"Delays,omitempty"`
}

type Consequences struct {
	Consequence []Consequence `json:"Consequence"`
}

// SituationKey identifies a situation across message snapshots.
type SituationKey struct {
	ParticipantRef  string
	SituationNumber string
}

func (k SituationKey) String() string { return k.ParticipantRef + "/" + k.SituationNumber }

// Situation is one PtSituationElement.
type Situation struct {
	CreationTime      *sirisx.DateTime `json:"CreationTime,omitempty"`
	ParticipantRef    string           `json:"ParticipantRef"`
	SituationNumber   string           `json:"SituationNumber"`
	Version           *int             `json:"Version,omitempty"`
	References        *References      `json:"References,omitempty"`
	Source            Source           `json:"Source"`
	VersionedAtTime   *sirisx.DateTime `json:"VersionedAtTime,omitempty"`
	Progress          Progress         `json:"Progress"`
	ValidityPeriod    []Period         `json:"ValidityPeriod"`
	Repetitions       *Repetitions     `json:"Repetitions,omitempty"`
	PublicationWindow Period           `json:"PublicationWindow"`

	// Reason is one of MiscellaneousReason, PersonnelReason, EquipmentReason
	// or EnvironmentReason. It encodes as ReasonType plus the matching field.
	Reason Reason `json:"-"`

	Planned      bool          `json:"Planned"`
	Summary      string        `json:"Summary"`
	Description  string        `json:"Description"`
	InfoLinks    *InfoLinks    `json:"InfoLinks,omitempty"`
	Consequences *Consequences `json:"Consequences,omitempty"`
}

// Key returns the identity of the situation.
func (s Situation) Key() SituationKey {
	return SituationKey{ParticipantRef: s.ParticipantRef, SituationNumber: s.SituationNumber}
}

// ActiveAt reports whether t falls inside any validity period.
func (s Situation) ActiveAt(t sirisx.DateTime) bool {
	for _, p := range s.ValidityPeriod {
		if p.Contains(t) {
			return true
		}
	}
	return false
}

// Situations wraps the PtSituationElement list.
type Situations struct {
	PtSituationElement []Situation `json:"PtSituationElement"`
}

// SituationExchangeDelivery is the SX payload of a ServiceDelivery.
type SituationExchangeDelivery struct {
	ResponseTimestamp     sirisx.DateTime `json:"ResponseTimestamp"`
	Status                *bool           `json:"Status,omitempty"`
	ShortestPossibleCycle *string         `json:"ShortestPossibleCycle,omitempty"`
	Situations            Situations      `json:"Situations"`
}

// ServiceDelivery is the producer envelope around a situation exchange delivery.
type ServiceDelivery struct {
	ResponseTimestamp         sirisx.DateTime           `json:"ResponseTimestamp"`
	ProducerRef               string                    `json:"ProducerRef"`
	ResponseMessageIdentifier string                    `json:"ResponseMessageIdentifier"`
	SituationExchangeDelivery SituationExchangeDelivery `json:"SituationExchangeDelivery"`
}

// Siri is the document root.
type Siri struct {
	ServiceDelivery ServiceDelivery `json:"ServiceDelivery"`
}
