package travel

import "github.com/Contextable/graphiti/pkg/ontology"

// Entity type names.
const (
	// Travel reservations and activities.
	TypeTrip            = "Trip"
	TypeFlight          = "Flight"
	TypeLodging         = "Lodging"
	TypeCarRental       = "CarRental"
	TypeRailJourney     = "RailJourney"
	TypeCruise          = "Cruise"
	TypeGroundTransport = "GroundTransport"
	TypeRestaurant      = "Restaurant"
	TypeActivity        = "Activity"

	// People.
	TypeTraveler = "Traveler"

	// Locations.
	TypeAirport = "Airport"
	TypeCity    = "City"
	TypeVenue   = "Venue"

	// Organizations.
	TypeAirline           = "Airline"
	TypeTransportProvider = "TransportProvider"
	TypeLoyaltyProgram    = "LoyaltyProgram"
)

// EntityTypes maps each entity-type name to its shape descriptor. Every
// attribute is optional; the descriptors constrain extraction, they do not
// mandate values.
var EntityTypes = map[string]*ontology.EntityType{
	TypeTrip: {
		Name: TypeTrip,
		Description: "A planned trip or journey, serving as the top-level container for all " +
			"travel reservations, activities, and notes. A trip has a destination, date " +
			"range, and groups together flights, lodging, car rentals, and other travel objects.",
		Attributes: []ontology.Attribute{
			{Name: "start_date", Kind: ontology.KindString, Description: "Trip start date (YYYY-MM-DD)"},
			{Name: "end_date", Kind: ontology.KindString, Description: "Trip end date (YYYY-MM-DD)"},
			{Name: "destination", Kind: ontology.KindString, Description: "Primary destination city or region"},
			{Name: "is_private", Kind: ontology.KindBoolean, Description: "Whether the trip is private"},
		},
	},
	TypeFlight: {
		Name: TypeFlight,
		Description: "A flight reservation or individual flight segment. Represents air travel " +
			"between two airports, including marketing/operating airline, flight number, and cabin class.",
		Attributes: []ontology.Attribute{
			{Name: "airline_code", Kind: ontology.KindString, Description: `IATA airline code (e.g., "UA", "DL")`},
			{Name: "flight_number", Kind: ontology.KindString, Description: `Flight number (e.g., "1234")`},
			{Name: "departure_airport", Kind: ontology.KindString, Description: `Departure airport IATA code (e.g., "SFO")`},
			{Name: "arrival_airport", Kind: ontology.KindString, Description: `Arrival airport IATA code (e.g., "JFK")`},
			{Name: "departure_time", Kind: ontology.KindString, Description: "Scheduled departure date and time"},
			{Name: "arrival_time", Kind: ontology.KindString, Description: "Scheduled arrival date and time"},
			{Name: "service_class", Kind: ontology.KindString, Description: `Class of service (e.g., "economy", "business", "first")`},
			{Name: "aircraft_type", Kind: ontology.KindString, Description: `Aircraft type (e.g., "Boeing 737-800")`},
			{Name: "seat_assignment", Kind: ontology.KindString, Description: `Seat assignment (e.g., "12A")`},
			{Name: "confirmation_number", Kind: ontology.KindString, Description: "Booking confirmation number"},
			{Name: "record_locator", Kind: ontology.KindString, Description: "PNR record locator"},
		},
	},
	TypeLodging: {
		Name: TypeLodging,
		Description: "A hotel, resort, vacation rental, or other accommodation booking. Represents " +
			"a stay at a lodging property with check-in/check-out dates and room details.",
		Attributes: []ontology.Attribute{
			{Name: "check_in_date", Kind: ontology.KindString, Description: "Check-in date"},
			{Name: "check_out_date", Kind: ontology.KindString, Description: "Check-out date"},
			{Name: "room_type", Kind: ontology.KindString, Description: `Room type (e.g., "King Suite")`},
			{Name: "number_of_rooms", Kind: ontology.KindString, Description: "Number of rooms booked"},
			{Name: "number_of_guests", Kind: ontology.KindString, Description: "Number of guests"},
			{Name: "confirmation_number", Kind: ontology.KindString, Description: "Booking confirmation number"},
		},
	},
	TypeCarRental: {
		Name: TypeCarRental,
		Description: "A car rental reservation. Represents a vehicle rental with pickup and " +
			"dropoff locations, dates, and vehicle details.",
		Attributes: []ontology.Attribute{
			{Name: "pickup_date", Kind: ontology.KindString, Description: "Pickup date and time"},
			{Name: "dropoff_date", Kind: ontology.KindString, Description: "Dropoff date and time"},
			{Name: "car_type", Kind: ontology.KindString, Description: `Vehicle category (e.g., "compact", "SUV", "luxury")`},
			{Name: "car_description", Kind: ontology.KindString, Description: "Vehicle description"},
			{Name: "pickup_location", Kind: ontology.KindString, Description: "Pickup location name"},
			{Name: "dropoff_location", Kind: ontology.KindString, Description: "Dropoff location name"},
			{Name: "confirmation_number", Kind: ontology.KindString, Description: "Booking confirmation number"},
		},
	},
	TypeRailJourney: {
		Name: TypeRailJourney,
		Description: "A rail or train reservation. Represents train travel between stations, " +
			"including carrier, train number, and service class.",
		Attributes: []ontology.Attribute{
			{Name: "carrier", Kind: ontology.KindString, Description: `Rail carrier name (e.g., "Amtrak", "Eurostar")`},
			{Name: "train_number", Kind: ontology.KindString, Description: "Train number"},
			{Name: "departure_station", Kind: ontology.KindString, Description: "Departure station name"},
			{Name: "arrival_station", Kind: ontology.KindString, Description: "Arrival station name"},
			{Name: "departure_time", Kind: ontology.KindString, Description: "Departure date and time"},
			{Name: "arrival_time", Kind: ontology.KindString, Description: "Arrival date and time"},
			{Name: "service_class", Kind: ontology.KindString, Description: "Class of service"},
			{Name: "seat_assignment", Kind: ontology.KindString, Description: "Seat or coach assignment"},
			{Name: "confirmation_number", Kind: ontology.KindString, Description: "Booking confirmation number"},
		},
	},
	TypeCruise: {
		Name: TypeCruise,
		Description: "A cruise reservation. Represents a cruise voyage with ship, cabin, and " +
			"port of call information.",
		Attributes: []ontology.Attribute{
			{Name: "ship_name", Kind: ontology.KindString, Description: "Name of the cruise ship"},
			{Name: "cabin_number", Kind: ontology.KindString, Description: "Cabin number"},
			{Name: "cabin_type", Kind: ontology.KindString, Description: `Cabin type (e.g., "interior", "balcony", "suite")`},
			{Name: "departure_date", Kind: ontology.KindString, Description: "Embarkation date"},
			{Name: "return_date", Kind: ontology.KindString, Description: "Disembarkation date"},
			{Name: "departure_port", Kind: ontology.KindString, Description: "Port of embarkation"},
			{Name: "confirmation_number", Kind: ontology.KindString, Description: "Booking confirmation number"},
		},
	},
	TypeGroundTransport: {
		Name: TypeGroundTransport,
		Description: "Ground transportation such as a shuttle, limousine, bus, taxi, or ride " +
			"service. Represents non-flight, non-rail transport between locations.",
		Attributes: []ontology.Attribute{
			{Name: "transport_type", Kind: ontology.KindString, Description: `Type of transport (e.g., "shuttle", "limousine", "bus", "taxi")`},
			{Name: "carrier", Kind: ontology.KindString, Description: "Transport provider name"},
			{Name: "pickup_location", Kind: ontology.KindString, Description: "Pickup location"},
			{Name: "dropoff_location", Kind: ontology.KindString, Description: "Dropoff location"},
			{Name: "pickup_time", Kind: ontology.KindString, Description: "Pickup date and time"},
			{Name: "confirmation_number", Kind: ontology.KindString, Description: "Booking confirmation number"},
		},
	},
	TypeRestaurant: {
		Name: TypeRestaurant,
		Description: "A restaurant reservation. Represents a dining reservation at a specific " +
			"restaurant with time, party size, and cuisine details.",
		Attributes: []ontology.Attribute{
			{Name: "cuisine", Kind: ontology.KindString, Description: "Type of cuisine"},
			{Name: "reservation_time", Kind: ontology.KindString, Description: "Reservation date and time"},
			{Name: "party_size", Kind: ontology.KindString, Description: "Number of diners"},
			{Name: "price_range", Kind: ontology.KindString, Description: "Price range indicator"},
			{Name: "dress_code", Kind: ontology.KindString, Description: "Dress code if applicable"},
			{Name: "confirmation_number", Kind: ontology.KindString, Description: "Reservation confirmation number"},
		},
	},
	TypeActivity: {
		Name: TypeActivity,
		Description: "A planned activity, tour, excursion, or event during a trip. Represents " +
			"things like museum visits, guided tours, shows, or sporting events.",
		Attributes: []ontology.Attribute{
			{Name: "activity_type", Kind: ontology.KindString, Description: `Type of activity (e.g., "tour", "museum", "show", "excursion")`},
			{Name: "start_time", Kind: ontology.KindString, Description: "Activity start date and time"},
			{Name: "end_time", Kind: ontology.KindString, Description: "Activity end date and time"},
			{Name: "venue", Kind: ontology.KindString, Description: "Venue or location name"},
			{Name: "confirmation_number", Kind: ontology.KindString, Description: "Booking confirmation number"},
		},
	},
	TypeTraveler: {
		Name: TypeTraveler,
		Description: "A person who is traveling or associated with travel reservations. May be a " +
			"passenger on a flight, a guest at a hotel, a driver on a car rental, or a " +
			"participant in an activity.",
		Attributes: []ontology.Attribute{
			{Name: "first_name", Kind: ontology.KindString, Description: "First name"},
			{Name: "last_name", Kind: ontology.KindString, Description: "Last name"},
			{Name: "email", Kind: ontology.KindString, Description: "Email address"},
			{Name: "frequent_traveler_number", Kind: ontology.KindString, Description: "Loyalty or frequent traveler program number"},
			{Name: "meal_preference", Kind: ontology.KindString, Description: "Meal preference for flights"},
			{Name: "seat_preference", Kind: ontology.KindString, Description: `Seat preference (e.g., "window", "aisle")`},
		},
	},
	TypeAirport: {
		Name:        TypeAirport,
		Description: "An airport. Identified by its IATA code and associated with a city.",
		Attributes: []ontology.Attribute{
			{Name: "iata_code", Kind: ontology.KindString, Description: `IATA airport code (e.g., "SFO", "LHR")`},
			{Name: "city", Kind: ontology.KindString, Description: "City the airport serves"},
			{Name: "country", Kind: ontology.KindString, Description: "Country code"},
			{Name: "latitude", Kind: ontology.KindFloat, Description: "Airport latitude"},
			{Name: "longitude", Kind: ontology.KindFloat, Description: "Airport longitude"},
		},
	},
	TypeCity: {
		Name:        TypeCity,
		Description: "A city or metropolitan area, typically a travel destination or origin.",
		Attributes: []ontology.Attribute{
			{Name: "country", Kind: ontology.KindString, Description: "Country the city is in"},
			{Name: "state_or_region", Kind: ontology.KindString, Description: "State, province, or region"},
			{Name: "timezone", Kind: ontology.KindString, Description: `IANA timezone (e.g., "America/New_York")`},
		},
	},
	TypeVenue: {
		Name: TypeVenue,
		Description: "A specific named place such as a hotel property, restaurant, museum, train " +
			"station, cruise port, or other point of interest.",
		Attributes: []ontology.Attribute{
			{Name: "venue_type", Kind: ontology.KindString, Description: `Type of venue (e.g., "hotel", "restaurant", "museum", "train_station", "cruise_port")`},
			{Name: "address", Kind: ontology.KindString, Description: "Street address"},
			{Name: "phone", Kind: ontology.KindString, Description: "Phone number"},
			{Name: "url", Kind: ontology.KindString, Description: "Website URL"},
			{Name: "latitude", Kind: ontology.KindFloat, Description: "Venue latitude"},
			{Name: "longitude", Kind: ontology.KindFloat, Description: "Venue longitude"},
		},
	},
	TypeAirline: {
		Name:        TypeAirline,
		Description: "An airline company that operates or markets flights.",
		Attributes: []ontology.Attribute{
			{Name: "iata_code", Kind: ontology.KindString, Description: `IATA airline code (e.g., "UA", "BA")`},
			{Name: "alliance", Kind: ontology.KindString, Description: `Airline alliance (e.g., "Star Alliance", "oneworld")`},
		},
	},
	TypeTransportProvider: {
		Name: TypeTransportProvider,
		Description: "A company that provides transportation services such as car rentals, rail " +
			"service, cruise lines, shuttle services, or ride-hailing.",
		Attributes: []ontology.Attribute{
			{Name: "provider_type", Kind: ontology.KindString, Description: `Type of provider (e.g., "car_rental", "rail", "cruise_line", "shuttle", "ride_service")`},
			{Name: "phone", Kind: ontology.KindString, Description: "Contact phone number"},
			{Name: "url", Kind: ontology.KindString, Description: "Website URL"},
		},
	},
	TypeLoyaltyProgram: {
		Name: TypeLoyaltyProgram,
		Description: "A frequent traveler loyalty or points program, such as airline miles " +
			"programs, hotel rewards, or rental car loyalty programs.",
		Attributes: []ontology.Attribute{
			{Name: "program_type", Kind: ontology.KindString, Description: `Type of program (e.g., "airline_miles", "hotel_points", "car_rental")`},
			{Name: "balance", Kind: ontology.KindString, Description: "Current points or miles balance"},
			{Name: "elite_status", Kind: ontology.KindString, Description: `Elite tier status (e.g., "Gold", "Platinum")`},
		},
	},
}
