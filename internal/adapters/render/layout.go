package render

import (
	"fmt"

	"festivalcms/internal/domain"
)

// Page geometry in points on an A4 portrait page.
const (
	pageTop     = 50.0
	contentTop  = 100.0
	dayBreakY   = 700.0
	rowBreakY   = 750.0
	rowHeight   = 20.0
	dayHeaderH  = 25.0
	dayGap      = 20.0
	titleY      = 50.0
	subtitleY   = 80.0
	colTime     = 50.0
	colTitle    = 150.0
	colDesc     = 300.0
	dayNameX    = 120.0
	rightMargin = 545.0
	colPadding  = 8.0
)

type textStyle struct {
	bold bool
	size float64
}

var (
	styleTitle    = textStyle{bold: true, size: 24}
	styleSubtitle = textStyle{bold: true, size: 12}
	styleDay      = textStyle{bold: true, size: 16}
	styleDayName  = textStyle{size: 12}
	styleHeader   = textStyle{bold: true, size: 12}
	styleCell     = textStyle{size: 12}
)

// element is one piece of text placed on a page. Y is the top of the line.
type element struct {
	page     int
	x, y     float64
	maxWidth float64
	centered bool
	style    textStyle
	text     string
}

// planSchedule lays out the schedule document. Days start on a new page once the cursor
// passes dayBreakY; rows start on a new page, with repeated column headers, once it passes
// rowBreakY.
func planSchedule(s *domain.Schedule) []element {
	var out []element
	page, y := 1, contentTop
	place := func(x float64, maxWidth float64, st textStyle, text string) {
		out = append(out, element{page: page, x: x, y: y, maxWidth: maxWidth, style: st, text: text})
	}
	headers := func() {
		place(colTime, colTitle-colTime-colPadding, styleHeader, "Time")
		place(colTitle, colDesc-colTitle-colPadding, styleHeader, "Event Name")
		place(colDesc, rightMargin-colDesc, styleHeader, "Description")
		y += rowHeight
	}

	out = append(out,
		element{page: 1, y: titleY, centered: true, style: styleTitle, text: s.Event.Name},
		element{page: 1, y: subtitleY, centered: true, style: styleSubtitle, text: fmt.Sprintf("%d/%d", s.Event.Year, s.Event.Month)},
	)

	for _, day := range s.Days {
		if y > dayBreakY {
			page, y = page+1, pageTop
		}
		place(colTime, 0, styleDay, fmt.Sprintf("Day %d", day.DayNumber))
		place(dayNameX, rightMargin-dayNameX, styleDayName, "- "+day.Name)
		y += dayHeaderH
		headers()

		for _, slot := range day.Times {
			if y > rowBreakY {
				page, y = page+1, pageTop
				headers()
			}
			place(colTime, colTitle-colTime-colPadding, styleCell, fmt.Sprintf("%s - %s", slot.StartTime, slot.EndTime))
			place(colTitle, colDesc-colTitle-colPadding, styleCell, slot.Title)
			place(colDesc, rightMargin-colDesc, styleCell, slot.Description)
			y += rowHeight
		}
		y += dayGap
	}
	return out
}
