package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"studywise-client/internal/dto"
)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayName maps day_of_week 0..6 to Monday..Sunday.
func DayName(day int) string {
	if day < 0 || day > 6 {
		return fmt.Sprintf("Day %d", day)
	}
	return dayNames[day]
}

func PlanTable(w io.Writer, plan dto.StudyPlan) error {
	if len(plan.Schedule) == 0 {
		_, err := fmt.Fprintln(w, "No days scheduled.")
		return err
	}
	if plan.StartDate != "" && plan.EndDate != "" {
		fmt.Fprintf(w, "%s to %s, %d days, %dh/day\n\n", FormatDate(plan.StartDate), FormatDate(plan.EndDate), len(plan.Schedule), plan.HoursPerDay)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tDATE\tTOPICS\tHOURS")
	for _, day := range plan.Schedule {
		names := make([]string, 0, len(day.Topics))
		for _, t := range day.Topics {
			names = append(names, fmt.Sprintf("%s (%s)", t.Name, Hours(t.Hours)))
		}
		topics := strings.Join(names, ", ")
		if topics == "" {
			topics = "Rest / revision"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", day.Day, FormatDate(day.Date), topics, Hours(day.TotalHours))
	}
	return tw.Flush()
}

// Timetable prints classes grouped by weekday, each day sorted by start time.
func Timetable(w io.Writer, entries []dto.TimetableEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No classes scheduled.")
		return err
	}
	sorted := append([]dto.TimetableEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DayOfWeek != sorted[j].DayOfWeek {
			return sorted[i].DayOfWeek < sorted[j].DayOfWeek
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tTIME\tTITLE\tID")
	for _, e := range sorted {
		fmt.Fprintf(tw, "%s\t%s-%s\t%s\t%s\n", DayName(e.DayOfWeek), e.StartTime, e.EndTime, e.Title, e.Id)
	}
	return tw.Flush()
}
