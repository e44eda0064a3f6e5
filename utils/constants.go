package utils

// Ship field bounds
const (
	// MaxNameLength limits ship and planet names (50 characters)
	MaxNameLength = 50

	// MinProdYear is the earliest accepted production year
	MinProdYear = 2800

	// MaxProdYear is the latest accepted production year (the "current" year)
	MaxProdYear = 3019

	// MinSpeed and MaxSpeed bound ship speed, inclusive
	MinSpeed = 0.01
	MaxSpeed = 0.99

	// MinCrewSize and MaxCrewSize bound crew size, inclusive
	MinCrewSize = 1
	MaxCrewSize = 9999
)

// Listing defaults
const (
	// DefaultPageNumber is used when a list request omits pageNumber
	DefaultPageNumber = 0

	// DefaultPageSize is used when a list request omits pageSize
	DefaultPageSize = 3
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)
