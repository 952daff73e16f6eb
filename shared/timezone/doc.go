// Package timezone holds the clinic's wall-clock timezone.
//
// Booking dates and HH:MM slot times arrive without an offset; they are read with Parse in the
// location configured by APP_TIMEZONE and stored as UTC instants. Listings and calendar feeds
// convert back with ToAppTime or Format. Call Init once at startup; until then every helper uses UTC.
package timezone
