package travel

import "github.com/Contextable/graphiti/pkg/ontology"

// Edge type names.
const (
	EdgePartOfTrip    = "PART_OF_TRIP"
	EdgeDepartsFrom   = "DEPARTS_FROM"
	EdgeArrivesAt     = "ARRIVES_AT"
	EdgeLocatedAt     = "LOCATED_AT"
	EdgeLocatedIn     = "LOCATED_IN"
	EdgeOperatedBy    = "OPERATED_BY"
	EdgeBookedWith    = "BOOKED_WITH"
	EdgeTravelerOn    = "TRAVELER_ON"
	EdgeConnectsTo    = "CONNECTS_TO"
	EdgeMemberOf      = "MEMBER_OF"
	EdgeOfferedBy     = "OFFERED_BY"
	EdgeDestinationOf = "DESTINATION_OF"
	EdgePortOfCall    = "PORT_OF_CALL"
	EdgeInvitedTo     = "INVITED_TO"
)

// EdgeTypes maps each edge-type name to its shape descriptor. Edge types
// carry qualifiers for the relationship itself; which pairs of entity types
// they may connect is declared in EdgeTypeMap, not here.
var EdgeTypes = map[string]*ontology.EdgeType{
	EdgePartOfTrip: {
		Name: EdgePartOfTrip,
		Description: "A reservation, activity, or note belongs to a specific trip. This is the " +
			"primary containment relationship linking travel objects to their parent trip.",
	},
	EdgeDepartsFrom: {
		Name: EdgeDepartsFrom,
		Description: "A flight, rail journey, cruise, or ground transport departs from a " +
			"specific airport, station, port, or location.",
		Attributes: []ontology.Attribute{
			{Name: "scheduled_time", Kind: ontology.KindString, Description: "Scheduled departure date and time"},
			{Name: "terminal", Kind: ontology.KindString, Description: "Terminal or platform"},
			{Name: "gate", Kind: ontology.KindString, Description: "Gate number"},
		},
	},
	EdgeArrivesAt: {
		Name: EdgeArrivesAt,
		Description: "A flight, rail journey, cruise, or ground transport arrives at a " +
			"specific airport, station, port, or location.",
		Attributes: []ontology.Attribute{
			{Name: "scheduled_time", Kind: ontology.KindString, Description: "Scheduled arrival date and time"},
			{Name: "terminal", Kind: ontology.KindString, Description: "Terminal or platform"},
			{Name: "gate", Kind: ontology.KindString, Description: "Gate number"},
			{Name: "baggage_claim", Kind: ontology.KindString, Description: "Baggage claim area"},
		},
	},
	EdgeLocatedAt: {
		Name: EdgeLocatedAt,
		Description: "A lodging, restaurant, activity, or other place-bound entity is " +
			"physically located at a specific venue or address.",
	},
	EdgeLocatedIn: {
		Name:        EdgeLocatedIn,
		Description: "An airport, venue, or other location is situated within a city or region.",
	},
	EdgeOperatedBy: {
		Name: EdgeOperatedBy,
		Description: "A flight is operated by an airline, or a transport/rental/cruise is " +
			"provided by a transport provider.",
		Attributes: []ontology.Attribute{
			{Name: "operating_code", Kind: ontology.KindString, Description: "Operating carrier code if different from marketing carrier"},
		},
	},
	EdgeBookedWith: {
		Name: EdgeBookedWith,
		Description: "A reservation was booked through a specific booking site, travel agent, " +
			"or provider.",
		Attributes: []ontology.Attribute{
			{Name: "booking_site", Kind: ontology.KindString, Description: "Name of the booking site or agency"},
			{Name: "booking_reference", Kind: ontology.KindString, Description: "Booking site confirmation number"},
			{Name: "booking_date", Kind: ontology.KindString, Description: "Date the booking was made"},
			{Name: "total_cost", Kind: ontology.KindString, Description: "Total cost of the booking"},
		},
	},
	EdgeTravelerOn: {
		Name: EdgeTravelerOn,
		Description: "A traveler is a passenger, guest, driver, or participant on a reservation. " +
			"The role varies by reservation type (passenger for flights, guest for hotels, " +
			"driver for car rentals, participant for activities).",
		Attributes: []ontology.Attribute{
			{Name: "role", Kind: ontology.KindString, Description: `Role of the traveler (e.g., "passenger", "guest", "driver", "participant", "reservation_holder")`},
			{Name: "ticket_number", Kind: ontology.KindString, Description: "Ticket number if applicable"},
		},
	},
	EdgeConnectsTo: {
		Name: EdgeConnectsTo,
		Description: "A flight segment, rail segment, or transport segment connects to a " +
			"subsequent segment, forming a multi-leg itinerary.",
		Attributes: []ontology.Attribute{
			{Name: "connection_time", Kind: ontology.KindString, Description: "Layover or connection time between segments"},
			{Name: "connection_airport", Kind: ontology.KindString, Description: "Connection airport or station code"},
		},
	},
	EdgeMemberOf: {
		Name:        EdgeMemberOf,
		Description: "A traveler is a member of a loyalty or frequent traveler program.",
		Attributes: []ontology.Attribute{
			{Name: "member_number", Kind: ontology.KindString, Description: "Membership or account number"},
			{Name: "elite_status", Kind: ontology.KindString, Description: "Elite tier status"},
		},
	},
	EdgeOfferedBy: {
		Name:        EdgeOfferedBy,
		Description: "A loyalty program is offered by an airline or transport provider.",
	},
	EdgeDestinationOf: {
		Name:        EdgeDestinationOf,
		Description: "A city or location is the destination (or origin) of a trip.",
		Attributes: []ontology.Attribute{
			{Name: "role", Kind: ontology.KindString, Description: `Whether this is an "origin" or "destination" of the trip`},
		},
	},
	EdgePortOfCall: {
		Name:        EdgePortOfCall,
		Description: "A cruise stops at a specific port city as part of its itinerary.",
		Attributes: []ontology.Attribute{
			{Name: "arrival_date", Kind: ontology.KindString, Description: "Arrival date at port"},
			{Name: "departure_date", Kind: ontology.KindString, Description: "Departure date from port"},
		},
	},
	EdgeInvitedTo: {
		Name:        EdgeInvitedTo,
		Description: "A traveler has been invited to or is sharing a trip with another traveler.",
		Attributes: []ontology.Attribute{
			{Name: "is_read_only", Kind: ontology.KindBoolean, Description: "Whether the invitee has read-only access"},
			{Name: "is_traveler", Kind: ontology.KindBoolean, Description: "Whether the invitee is also traveling on this trip"},
		},
	},
}
