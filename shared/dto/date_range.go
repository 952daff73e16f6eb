package dto

import (
	"clinic/shared/constant"
	"clinic/shared/failure"
	"clinic/shared/timezone"
	"net/http"
	"time"
)

// DateRange is an optional calendar window. Zero From or To leaves that side open; To is exclusive.
type DateRange struct {
	From time.Time
	To   time.Time
}

// DateRangeFromRequest reads the from/to query parameters as calendar dates in the application
// timezone. The to date is inclusive on the wire and converted to an exclusive bound.
func DateRangeFromRequest(r *http.Request) (DateRange, error) {
	var res DateRange

	query := r.URL.Query()

	if from := query.Get(constant.RequestParamFrom); from != "" {
		parsed, err := timezone.Parse(constant.DateLayout, from)
		if err != nil {
			return res, failure.BadRequestFromString("from must be a date formatted as YYYY-MM-DD") //nolint:wrapcheck
		}

		res.From = parsed
	}

	if to := query.Get(constant.RequestParamTo); to != "" {
		parsed, err := timezone.Parse(constant.DateLayout, to)
		if err != nil {
			return res, failure.BadRequestFromString("to must be a date formatted as YYYY-MM-DD") //nolint:wrapcheck
		}

		res.To = parsed.AddDate(0, 0, 1)
	}

	if !res.From.IsZero() && !res.To.IsZero() && !res.From.Before(res.To) {
		return res, failure.BadRequestFromString("from must not be after to") //nolint:wrapcheck
	}

	return res, nil
}
