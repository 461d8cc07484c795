package handlers

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/crud-app/records-api/internal/models"
)

// Layouts accepted for datetime query parameters, tried in order. Naive values are read as UTC.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	models.DateLayout,
}

// queryParser collects validation errors while reading optional query parameters.
type queryParser struct {
	values url.Values
	errs   []ValidationError
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values}
}

// String returns the trimmed parameter; empty means absent.
func (p *queryParser) String(name string) string {
	return strings.TrimSpace(p.values.Get(name))
}

// Date parses a YYYY-MM-DD parameter as midnight UTC.
func (p *queryParser) Date(name string) *time.Time {
	raw := p.String(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		p.errs = append(p.errs, ValidationError{Field: name, Description: "must be a date in YYYY-MM-DD format"})
		return nil
	}
	return &t
}

// Datetime parses an ISO-8601 datetime parameter, a naive datetime or a bare date.
func (p *queryParser) Datetime(name string) *time.Time {
	raw := p.String(name)
	if raw == "" {
		return nil
	}

	// A "+" offset arrives as a space after query decoding: 2025-07-03T17:44:03 02:00.
	if i := len(raw) - 6; i > 10 && raw[i] == ' ' {
		raw = raw[:i] + "+" + raw[i+1:]
	}

	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	p.errs = append(p.errs, ValidationError{Field: name, Description: "must be a valid datetime"})
	return nil
}

// NonNegativeInt parses an integer parameter that must be >= 0.
func (p *queryParser) NonNegativeInt(name string) *int {
	raw := p.String(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, ValidationError{Field: name, Description: "must be an integer"})
		return nil
	}
	if n < 0 {
		p.errs = append(p.errs, ValidationError{Field: name, Description: "must be greater than or equal to 0"})
		return nil
	}
	return &n
}

// Errors returns the collected validation errors, nil when every parameter parsed.
func (p *queryParser) Errors() []ValidationError {
	return p.errs
}
