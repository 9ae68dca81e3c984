// Package ics renders events as an iCalendar document for calendar clients.
package ics

import (
	"bytes"
	"time"

	ical "github.com/emersion/go-ical"

	"github.com/tomocode/my-schedule-app/internal/model"
)

const productID = "-//my-schedule-app//EN"

// emptyCalendar is served when the caller owns no events; the encoder
// refuses a VCALENDAR without components, but an empty feed is a valid
// outcome, not an error.
const emptyCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:" + productID + "\r\n" +
	"END:VCALENDAR\r\n"

// Feed encodes the events as a single VCALENDAR of VEVENTs. The event id is
// the UID, so re-fetching the feed updates entries in place.
func Feed(events []model.Event) ([]byte, error) {
	if len(events) == 0 {
		return []byte(emptyCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	now := time.Now().UTC()
	for _, e := range events {
		cal.Children = append(cal.Children, toVEvent(e, now))
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toVEvent converts one stored event to an ical VEVENT component.
func toVEvent(e model.Event, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, e.ID.String())
	ve.Props.SetText(ical.PropSummary, e.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ve.Props.SetDateTime(ical.PropDateTimeStart, e.StartTime.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeEnd, e.EndTime.UTC())

	if e.Description != "" {
		ve.Props.SetText(ical.PropDescription, e.Description)
	}
	if !e.UpdatedAt.IsZero() {
		ve.Props.SetDateTime(ical.PropLastModified, e.UpdatedAt.UTC())
	}
	return ve
}
