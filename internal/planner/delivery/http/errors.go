package http

import (
	"fmt"
	"net/http"

	"day-planner/internal/planner"
	pkgErrors "day-planner/pkg/errors"
)

// mapError translates planner errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch planner.KindOf(err) {
	case planner.ErrInvalidTimeZone, planner.ErrEmptyInput, planner.ErrInputTooLong, planner.ErrInvalidTask:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case planner.ErrInvalidGeneratedPlan, planner.ErrOutOfScopeTask:
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case planner.ErrCalendarFetchFailed, planner.ErrCalendarInsertFailed, planner.ErrGenerationFailed:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	case planner.ErrNoCalendar:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

func conflictError(details any) error {
	return pkgErrors.NewHTTPError(http.StatusConflict, "Scheduling conflict").WithDetails(details)
}

func commitFailedError(created, failed int, details any) error {
	return pkgErrors.NewHTTPError(http.StatusBadGateway,
		fmt.Sprintf("Created %d events, %d failed", created, failed)).WithDetails(details)
}
