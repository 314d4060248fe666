package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrEmptyShopList = New(
		"EMPTY_SHOP_LIST",
		"At least one shop to visit is required",
		http.StatusBadRequest,
	)

	ErrInvalidTravelMode = New(
		"INVALID_TRAVEL_MODE",
		"Travel mode must be one of DRIVING, TRANSIT, WALKING",
		http.StatusBadRequest,
	)

	ErrAlreadyPlanning = New(
		"ALREADY_PLANNING",
		"A route planning request is already in progress",
		http.StatusConflict,
	)

	ErrNoViableStops = New(
		"NO_VIABLE_STOPS",
		"No shop could be resolved to a reachable location",
		http.StatusUnprocessableEntity,
	)

	ErrNoRoutes = New(
		"NO_ROUTES",
		"No viable route candidate could be evaluated",
		http.StatusUnprocessableEntity,
	)

	ErrTripNotFound = New(
		"TRIP_NOT_FOUND",
		"Trip not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
