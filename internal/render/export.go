package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"studywise-client/internal/dto"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/xuri/excelize/v2"
)

// NoteHTML renders a note's markdown content as a standalone HTML page.
func NoteHTML(note dto.Note) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.SkipHTML})
	body := markdown.ToHTML([]byte(note.Content), p, r)

	title := html.EscapeString(note.Subject)
	var b strings.Builder
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n<h1>%s</h1>\n", title, title)
	if note.UpdatedAt != "" {
		fmt.Fprintf(&b, "<p><em>Updated %s</em></p>\n", html.EscapeString(FormatDateTime(note.UpdatedAt)))
	}
	b.Write(body)
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}

const planSheet = "Study Plan"

var planHeaders = []string{"Day", "Date", "Topic", "Hours", "Day total"}

// WritePlanXLSX writes the plan as a workbook with one row per scheduled
// topic.
func WritePlanXLSX(w io.Writer, plan dto.StudyPlan) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", planSheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, h := range planHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(planSheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, day := range plan.Schedule {
		topics := day.Topics
		if len(topics) == 0 {
			topics = []dto.PlanTopic{{Name: "Rest / revision"}}
		}
		for _, t := range topics {
			values := []interface{}{day.Day, day.Date, t.Name, t.Hours, day.TotalHours}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(planSheet, cell, v); err != nil {
					return err
				}
			}
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
