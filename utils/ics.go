package utils

import (
	"errors"
	"fmt"
	"io"
	"strings"

	ical "github.com/arran4/golang-ical"

	"github.com/DanielJacob1998/capstone/models"
)

// RowError reports one rejected item from a batch adapter. Index is
// the position of the item in its source (VEVENT order, CSV row).
type RowError struct {
	Index int    `json:"index"`
	Input string `json:"input"`
	Error string `json:"error"`
}

// ParseCalendarFile converts an uploaded .ics payload into candidate
// event requests. A VEVENT that cannot be converted becomes a RowError;
// it never aborts the rest of the file. Only a payload that fails to
// parse as a calendar at all returns a non-nil error.
func ParseCalendarFile(r io.Reader) ([]models.CreateEventInput, []RowError, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parse calendar: %w", err)
	}

	var candidates []models.CreateEventInput
	var rowErrs []RowError
	for i, ve := range cal.Events() {
		cand, err := convertVEvent(ve)
		if err != nil {
			rowErrs = append(rowErrs, RowError{
				Index: i,
				Input: veSummary(ve),
				Error: err.Error(),
			})
			continue
		}
		candidates = append(candidates, cand)
	}
	return candidates, rowErrs, nil
}

func convertVEvent(ve *ical.VEvent) (models.CreateEventInput, error) {
	var out models.CreateEventInput

	sum := ve.GetProperty(ical.ComponentPropertySummary)
	if sum == nil || sum.Value == "" {
		return out, errors.New("missing SUMMARY")
	}
	out.Title = sum.Value
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.Location = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return out, fmt.Errorf("invalid DTSTART: %w", err)
	}
	out.StartDate = start.Format(models.DateLayout)

	allDay := isAllDay(ve)
	if !allDay {
		out.Time = start.Format(models.ClockLayout)
	}

	end, err := ve.GetEndAt()
	if err != nil || end.IsZero() {
		out.EndDate = out.StartDate
		return out, nil
	}
	// DTEND is exclusive for all-day events, so a one-day event ends
	// the next morning. Pull it back onto the last covered day.
	if allDay && end.After(start) {
		end = end.AddDate(0, 0, -1)
	}
	if end.Before(start) {
		end = start
	}
	out.EndDate = end.Format(models.DateLayout)
	return out, nil
}

// isAllDay detects date-only DTSTART values, either via VALUE=DATE or
// a value without a time component.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}

func veSummary(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		return p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		return p.Value
	}
	return ""
}
