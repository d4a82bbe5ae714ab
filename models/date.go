package models

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/josephgoksu/sejong/types"
)

const (
	// DateLayout is the only accepted input and storage format.
	DateLayout = "2006-01-02"
	// DisplayLayout renders dates for humans, e.g. "Dec 02 2019".
	DisplayLayout = "Jan 02 2006"
)

// ParseDate parses a yyyy-MM-dd calendar date. Invalid calendar days such as
// 2019-02-30 are rejected.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, types.NewValidationError(types.MsgInvalidDate)
	}
	return d, nil
}

// FormatDate renders d with DisplayLayout.
func FormatDate(d civil.Date) string {
	return d.In(time.UTC).Format(DisplayLayout)
}
