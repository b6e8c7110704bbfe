package stub

import (
	"fmt"
	"time"

	"studywise-client/internal/dto"
)

const (
	dateLayout  = "2006-01-02"
	maxPlanDays = 365
)

// GenerateSchedule spreads topics over the inclusive date range in sequence
// order, at least one per day, with the remainder going to the earliest
// days. Days after the last topic are not emitted. A topic without an
// estimate takes hoursPerDay.
func GenerateSchedule(topics []dto.Topic, startDate, endDate string, hoursPerDay int) ([]dto.PlanDay, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, badRequest(fmt.Sprintf("Invalid date format. Use YYYY-MM-DD: %v", err))
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, badRequest(fmt.Sprintf("Invalid date format. Use YYYY-MM-DD: %v", err))
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1
	if totalDays <= 0 {
		return nil, badRequest("End date must be after start date")
	}
	if totalDays > maxPlanDays {
		return nil, badRequest("Study plan cannot exceed 365 days")
	}

	perDay, extra := len(topics)/totalDays, len(topics)%totalDays
	if perDay < 1 {
		perDay, extra = 1, 0
	}

	schedule := []dto.PlanDay{}
	next := 0
	for day := 0; day < totalDays && next < len(topics); day++ {
		count := perDay
		if day < extra {
			count++
		}
		if rest := len(topics) - next; count > rest {
			count = rest
		}

		pd := dto.PlanDay{
			Day:    day + 1,
			Date:   start.AddDate(0, 0, day).Format(dateLayout),
			Topics: make([]dto.PlanTopic, 0, count),
		}
		for _, t := range topics[next : next+count] {
			hours := t.EstimatedHours
			if hours == 0 {
				hours = float64(hoursPerDay)
			}
			pd.Topics = append(pd.Topics, dto.PlanTopic{Id: t.Id, Name: t.Name, Description: t.Description, Hours: hours})
			pd.TotalHours += hours
		}
		next += count
		schedule = append(schedule, pd)
	}
	return schedule, nil
}
