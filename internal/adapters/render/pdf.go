package render

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"festivalcms/internal/domain"
)

type scheduleRenderer struct {
	loc    *time.Location
	prodID string
	now    func() time.Time
}

// NewScheduleRenderer returns a renderer for schedule PDFs and iCalendar feeds. Slot
// clock times are interpreted in loc; nil means UTC.
func NewScheduleRenderer(loc *time.Location) domain.ScheduleRenderer {
	if loc == nil {
		loc = time.UTC
	}
	return &scheduleRenderer{loc: loc, prodID: "-//festivalcms//schedule//EN", now: time.Now}
}

func (r *scheduleRenderer) RenderPDF(w io.Writer, s *domain.Schedule) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(s.Event.Name+" schedule", true)
	pdf.SetCreationDate(r.now())
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()

	pdf.AddPage()
	page := 1
	for _, el := range planSchedule(s) {
		for page < el.page {
			pdf.AddPage()
			page++
		}
		style := ""
		if el.style.bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, el.style.size)
		text := tr(el.text)
		if el.maxWidth > 0 {
			text = fit(pdf, text, el.maxWidth)
		}
		x := el.x
		if el.centered {
			x = (pageWidth - pdf.GetStringWidth(text)) / 2
		}
		// fpdf positions text by its baseline.
		pdf.Text(x, el.y+el.style.size*0.8, text)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// fit truncates text with an ellipsis so it is at most width points wide.
func fit(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	const ellipsis = "..."
	// text is already single-byte encoded here.
	for n := len(text) - 1; n > 0; n-- {
		candidate := text[:n] + ellipsis
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ellipsis
}
