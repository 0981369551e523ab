package travel

import "github.com/Contextable/graphiti/pkg/ontology"

// EdgeTypeMap restricts which edge types may connect which ordered
// entity-type pairs. Direction is carried by the key: (Flight, Trip) means
// an edge from a Flight node to a Trip node. Values keep authoring order.
//
// Targets named ontology.Wildcard apply to any entity type; the BOOKED_WITH
// rows use it because a booking agent or site is not one fixed type.
var EdgeTypeMap = ontology.EdgeTypeMap{
	// Trip containment: reservations and activities belong to trips.
	{Source: TypeFlight, Target: TypeTrip}:          {EdgePartOfTrip},
	{Source: TypeLodging, Target: TypeTrip}:         {EdgePartOfTrip},
	{Source: TypeCarRental, Target: TypeTrip}:       {EdgePartOfTrip},
	{Source: TypeRailJourney, Target: TypeTrip}:     {EdgePartOfTrip},
	{Source: TypeCruise, Target: TypeTrip}:          {EdgePartOfTrip},
	{Source: TypeGroundTransport, Target: TypeTrip}: {EdgePartOfTrip},
	{Source: TypeRestaurant, Target: TypeTrip}:      {EdgePartOfTrip},
	{Source: TypeActivity, Target: TypeTrip}:        {EdgePartOfTrip},

	// Departure and arrival endpoints for transport types.
	{Source: TypeFlight, Target: TypeAirport}:        {EdgeDepartsFrom, EdgeArrivesAt},
	{Source: TypeRailJourney, Target: TypeVenue}:     {EdgeDepartsFrom, EdgeArrivesAt},
	{Source: TypeCruise, Target: TypeVenue}:          {EdgeDepartsFrom, EdgeArrivesAt, EdgePortOfCall},
	{Source: TypeGroundTransport, Target: TypeVenue}: {EdgeDepartsFrom, EdgeArrivesAt},
	{Source: TypeCarRental, Target: TypeVenue}:       {EdgeDepartsFrom, EdgeArrivesAt},

	// Physical location.
	{Source: TypeLodging, Target: TypeVenue}:    {EdgeLocatedAt},
	{Source: TypeRestaurant, Target: TypeVenue}: {EdgeLocatedAt},
	{Source: TypeActivity, Target: TypeVenue}:   {EdgeLocatedAt},

	// Geographic containment.
	{Source: TypeAirport, Target: TypeCity}: {EdgeLocatedIn},
	{Source: TypeVenue, Target: TypeCity}:   {EdgeLocatedIn},

	// Trip destinations.
	{Source: TypeTrip, Target: TypeCity}: {EdgeDestinationOf},

	// Cruise port of call.
	{Source: TypeCruise, Target: TypeCity}: {EdgePortOfCall},

	// Operators and providers.
	{Source: TypeFlight, Target: TypeAirline}:                    {EdgeOperatedBy},
	{Source: TypeRailJourney, Target: TypeTransportProvider}:     {EdgeOperatedBy},
	{Source: TypeCruise, Target: TypeTransportProvider}:          {EdgeOperatedBy},
	{Source: TypeGroundTransport, Target: TypeTransportProvider}: {EdgeOperatedBy},
	{Source: TypeCarRental, Target: TypeTransportProvider}:       {EdgeOperatedBy},

	// Booking provenance: any entity may be the booking agent or site.
	{Source: TypeFlight, Target: ontology.Wildcard}:          {EdgeBookedWith},
	{Source: TypeLodging, Target: ontology.Wildcard}:         {EdgeBookedWith},
	{Source: TypeCarRental, Target: ontology.Wildcard}:       {EdgeBookedWith},
	{Source: TypeRailJourney, Target: ontology.Wildcard}:     {EdgeBookedWith},
	{Source: TypeCruise, Target: ontology.Wildcard}:          {EdgeBookedWith},
	{Source: TypeGroundTransport, Target: ontology.Wildcard}: {EdgeBookedWith},
	{Source: TypeRestaurant, Target: ontology.Wildcard}:      {EdgeBookedWith},
	{Source: TypeActivity, Target: ontology.Wildcard}:        {EdgeBookedWith},

	// Traveler associations. INVITED_TO is trip sharing, not a travel role.
	{Source: TypeTraveler, Target: TypeFlight}:          {EdgeTravelerOn},
	{Source: TypeTraveler, Target: TypeLodging}:         {EdgeTravelerOn},
	{Source: TypeTraveler, Target: TypeCarRental}:       {EdgeTravelerOn},
	{Source: TypeTraveler, Target: TypeRailJourney}:     {EdgeTravelerOn},
	{Source: TypeTraveler, Target: TypeCruise}:          {EdgeTravelerOn},
	{Source: TypeTraveler, Target: TypeGroundTransport}: {EdgeTravelerOn},
	{Source: TypeTraveler, Target: TypeRestaurant}:      {EdgeTravelerOn},
	{Source: TypeTraveler, Target: TypeActivity}:        {EdgeTravelerOn},
	{Source: TypeTraveler, Target: TypeTrip}:            {EdgeInvitedTo},

	// Multi-segment connections: same type on both sides only.
	{Source: TypeFlight, Target: TypeFlight}:                   {EdgeConnectsTo},
	{Source: TypeRailJourney, Target: TypeRailJourney}:         {EdgeConnectsTo},
	{Source: TypeGroundTransport, Target: TypeGroundTransport}: {EdgeConnectsTo},

	// Loyalty programs.
	{Source: TypeTraveler, Target: TypeLoyaltyProgram}:          {EdgeMemberOf},
	{Source: TypeLoyaltyProgram, Target: TypeAirline}:           {EdgeOfferedBy},
	{Source: TypeLoyaltyProgram, Target: TypeTransportProvider}: {EdgeOfferedBy},
}
