package formatter

import (
	"fmt"
	"strings"

	"github.com/dmarkov/sprintwise/internal/domain"
)

// PoolCard holds a pool and its computed load for rendering.
type PoolCard struct {
	Pool         domain.SprintPool
	Items        []domain.Requirement
	UsedDays     int
	NetCapacity  int
	OverCapacity bool
}

// BoardData is everything the board view renders.
type BoardData struct {
	Pools    []PoolCard
	Ready    []domain.Requirement
	NotReady []domain.Requirement
}

// CapacityGauge renders used versus net capacity, red once the pool is
// past its net days.
func CapacityGauge(used, net int, over bool) string {
	text := fmt.Sprintf("%d/%dd", used, net)
	if over {
		return StyleRed.Render(text + fmt.Sprintf(" (+%dd over)", used-net))
	}
	if net > 0 && used*100 >= net*80 {
		return StyleYellow.Render(text)
	}
	return StyleGreen.Render(text)
}

// ReadinessPill returns a colored readiness indicator.
func ReadinessPill(r domain.Readiness) string {
	switch r {
	case domain.ReadinessPlanComplete:
		return StyleGreen.Render("● Plan complete")
	case domain.ReadinessWorkloadEvaluated:
		return StyleBlue.Render("● Evaluated")
	case domain.ReadinessNotEvaluated:
		return StyleDim.Render("○ Not evaluated")
	default:
		return StyleDim.Render(string(r))
	}
}

// ValueBadge returns a purple-styled business value label.
func ValueBadge(v domain.BusinessValueTier) string {
	if v == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(string(v))
}

// DeadlineCell renders the deadline column: hard deadlines in red, soft
// dates plain, "--" when absent.
func DeadlineCell(r domain.Requirement) string {
	if r.DeadlineDate == nil {
		if r.HardDeadline {
			return StyleRed.Render("hard")
		}
		return Dim("--")
	}
	text := r.DeadlineDate.Format("Jan 2")
	if r.HardDeadline {
		return StyleRed.Render(text + " !")
	}
	return StyleFg.Render(text)
}

func requirementRow(r domain.Requirement) []string {
	return []string{
		TruncID(r.ID),
		Score(r.DisplayScore),
		Stars(r.StarTier),
		Bold(r.Title),
		Days(r.EffortDays),
		DeadlineCell(r),
	}
}

var requirementHeaders = []string{"ID", "SCORE", "RATING", "TITLE", "EFFORT", "DEADLINE"}

// FormatRequirementList renders the full requirement table, scheduled
// and unscheduled alike.
func FormatRequirementList(items []domain.Requirement) string {
	headers := append([]string{}, requirementHeaders...)
	headers = append(headers, "READINESS", "LOCATION")

	rows := make([][]string, 0, len(items))
	for _, r := range items {
		location := Dim("unscheduled")
		if !r.Unscheduled() {
			location = StyleBlue.Render(TruncPlain(r.PoolID))
		}
		row := requirementRow(r)
		row = append(row, ReadinessPill(r.Readiness), location)
		rows = append(rows, row)
	}
	return RenderBox("Requirements", RenderTable(headers, rows))
}

// FormatPoolList renders the pool table.
func FormatPoolList(cards []PoolCard) string {
	headers := []string{"ID", "NAME", "DATES", "RESERVES", "LOAD"}
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		p := c.Pool
		dates := Dim("--")
		if p.StartDate != "" || p.EndDate != "" {
			dates = StyleFg.Render(p.StartDate + " → " + p.EndDate)
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			dates,
			Dim(fmt.Sprintf("%d%%", p.ReservePct())),
			CapacityGauge(c.UsedDays, c.NetCapacity, c.OverCapacity),
		})
	}
	return RenderBox("Sprint pools", RenderTable(headers, rows))
}

// FormatBoard renders the whole planning board: each pool with its
// assigned items, then the prioritized backlog, then items awaiting
// evaluation.
func FormatBoard(data BoardData) string {
	var sections []string

	for _, c := range data.Pools {
		title := fmt.Sprintf("%s  %s", Bold(c.Pool.Name), CapacityGauge(c.UsedDays, c.NetCapacity, c.OverCapacity))
		var body string
		if len(c.Items) == 0 {
			body = Dim("No requirements assigned.")
		} else {
			rows := make([][]string, 0, len(c.Items))
			for _, r := range c.Items {
				rows = append(rows, requirementRow(r))
			}
			body = RenderTable(requirementHeaders, rows)
		}
		sections = append(sections, title+"\n"+body)
	}

	if len(data.Ready) == 0 {
		sections = append(sections, Header("Unscheduled")+"\n"+Dim("Backlog is empty."))
	} else {
		rows := make([][]string, 0, len(data.Ready))
		for _, r := range data.Ready {
			rows = append(rows, requirementRow(r))
		}
		sections = append(sections, Header("Unscheduled")+"\n"+RenderTable(requirementHeaders, rows))
	}

	if len(data.NotReady) > 0 {
		var b strings.Builder
		b.WriteString(Header("Awaiting evaluation") + "\n")
		for _, r := range data.NotReady {
			b.WriteString(fmt.Sprintf("%s %s %s\n", TruncID(r.ID), StyleFg.Render(r.Title), ReadinessPill(r.Readiness)))
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	}

	return RenderBox("Planning board", strings.Join(sections, "\n\n"))
}

// TruncPlain returns the first 8 characters of an ID without styling.
func TruncPlain(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
