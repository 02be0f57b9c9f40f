package calendar

import "calendar-assistant/pkg/gcalendar"

// listEventsReq binds the event listing query parameters.
type listEventsReq struct {
	CalendarID   string `form:"calendar_id"`
	MaxResults   int64  `form:"max_results"`
	UpcomingOnly bool   `form:"upcoming_only,default=true"`
}

func (r listEventsReq) toOptions() gcalendar.QueryOptions {
	opts := gcalendar.DefaultQueryOptions()
	if r.CalendarID != "" {
		opts.CalendarID = r.CalendarID
	}
	if r.MaxResults > 0 {
		opts.MaxResults = r.MaxResults
	}
	opts.UpcomingOnly = r.UpcomingOnly
	return opts
}
