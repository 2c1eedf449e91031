package restapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"railmap.euroticket.org/internal/tracker"
)

var validate = validator.New()

// stationPairQuery carries the common query parameters of the
// two-station endpoints. Presence of the station names is handled
// separately (missing names answer with an empty list, matching the
// exploratory-query contract); the validator guards formats.
type stationPairQuery struct {
	FromStation string
	ToStation   string
	Date        string `validate:"omitempty,datetime=2006-01-02"`
	Time        string
}

// parseStationPair extracts and validates the from/to/date/time query
// parameters. Returns false when a response has already been written.
func (api *RestAPI) parseStationPair(w http.ResponseWriter, r *http.Request) (stationPairQuery, bool) {
	params := r.URL.Query()
	query := stationPairQuery{
		FromStation: params.Get("from_station"),
		ToStation:   params.Get("to_station"),
		Date:        params.Get("date"),
		Time:        params.Get("time"),
	}

	if query.FromStation == "" || query.ToStation == "" {
		api.sendEmptyList(w, r)
		return query, false
	}

	if err := validate.Struct(query); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fieldErrors := make(map[string][]string)
			for _, fe := range invalid {
				field := strings.ToLower(fe.Field())
				fieldErrors[field] = append(fieldErrors[field], fmt.Sprintf("Invalid field value for field %q.", field))
			}
			api.validationErrorResponse(w, r, fieldErrors)
			return query, false
		}
		api.serverErrorResponse(w, r, err)
		return query, false
	}

	return query, true
}

// parseDate converts a validated YYYY-MM-DD string to a time, or nil
// when no date filter was supplied.
func parseDate(date string) *time.Time {
	if date == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	return &d
}

// parseReferenceTime resolves the reference time-of-day: the given
// parameter when present, the current wall clock otherwise. An
// unparseable value is rejected, never defaulted, so caller bugs are
// not masked.
func (api *RestAPI) parseReferenceTime(w http.ResponseWriter, r *http.Request, value string) (tracker.TimeOfDay, bool) {
	if value == "" {
		return tracker.TimeOfDayFromTime(time.Now()), true
	}

	ref, err := tracker.ParseTimeOfDay(value)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"time": {"Invalid field value for field \"time\"."},
		})
		return 0, false
	}
	return ref, true
}
