package views

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type ResultItemData struct {
	Icon     string
	Name     string
	Subtitle string
	Shortcut string
	Favorite bool
}

type ResultsPanelData struct {
	InputView string
	Items     []ResultItemData
	Selected  int
	Searching bool
	SpinView  string
}

func RenderResultsPanel(data ResultsPanelData) string {
	var b strings.Builder
	b.WriteString(data.InputView + "\n")
	if data.Searching {
		b.WriteString(data.SpinView + " searching\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no results)")
		return strings.TrimSpace(b.String())
	}
	for i, item := range data.Items {
		cursor := " "
		if i == data.Selected {
			cursor = ">"
		}
		star := " "
		if item.Favorite {
			star = "★"
		}
		line := fmt.Sprintf("%s%s %s %s", cursor, star, item.Icon, item.Name)
		if item.Subtitle != "" {
			line += "  " + item.Subtitle
		}
		if item.Shortcut != "" {
			line += "  [" + item.Shortcut + "]"
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

type CalendarEventData struct {
	Title    string
	Time     string
	IsAllDay bool
}

type CalendarBucketData struct {
	Label  string
	Events []CalendarEventData
}

type CalendarPanelData struct {
	Buckets     []CalendarBucketData
	StatusTitle string
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar:\n")
	if data.StatusTitle != "" {
		b.WriteString("next: " + data.StatusTitle + "\n")
	}
	if len(data.Buckets) == 0 {
		b.WriteString("(no events)")
		return b.String()
	}
	for _, bucket := range data.Buckets {
		b.WriteString("\n" + bucket.Label + ":\n")
		if len(bucket.Events) == 0 {
			b.WriteString("  (free)\n")
			continue
		}
		for _, event := range bucket.Events {
			when := event.Time
			if event.IsAllDay {
				when = "all day"
			}
			b.WriteString(fmt.Sprintf("  %s  %s\n", when, event.Title))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

type ProjectData struct {
	Name     string
	Tracking bool
}

type ProjectPanelData struct {
	Projects     []ProjectData
	Selected     int
	TodayMinutes int
	MonthMinutes int
	Heatmap      map[int64]int
}

func RenderProjectPanel(data ProjectPanelData) string {
	var b strings.Builder
	b.WriteString("projects:\n")
	if len(data.Projects) == 0 {
		b.WriteString("(none, create one first)\n")
	}
	for i, project := range data.Projects {
		cursor := " "
		if i == data.Selected {
			cursor = ">"
		}
		marker := ""
		if project.Tracking {
			marker = " ⏱"
		}
		b.WriteString(fmt.Sprintf("%s %s%s\n", cursor, project.Name, marker))
	}
	b.WriteString(fmt.Sprintf("\ntoday: %s | month: %s\n", formatMinutes(data.TodayMinutes), formatMinutes(data.MonthMinutes)))
	b.WriteString(renderHeatmapRow(data.Heatmap))
	return strings.TrimSpace(b.String())
}

// renderHeatmapRow draws one cell per tracked day, oldest first.
func renderHeatmapRow(heatmap map[int64]int) string {
	if len(heatmap) == 0 {
		return ""
	}
	days := make([]int64, 0, len(heatmap))
	for day := range heatmap {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	var b strings.Builder
	for _, day := range days {
		label := time.UnixMilli(day).Format("02")
		b.WriteString(fmt.Sprintf("%s:%s ", label, heatCell(heatmap[day])))
	}
	return strings.TrimSpace(b.String())
}

func heatCell(minutes int) string {
	switch {
	case minutes == 0:
		return "·"
	case minutes < 60:
		return "▂"
	case minutes < 180:
		return "▄"
	case minutes < 360:
		return "▆"
	default:
		return "█"
	}
}

func formatMinutes(total int) string {
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

type EmojiGridData struct {
	Favorites []string
	Grid      []string
	Selected  int
	PerRow    int
}

func RenderEmojiGrid(data EmojiGridData) string {
	cells := append(append([]string{}, data.Favorites...), data.Grid...)
	if len(cells) == 0 {
		return "(no emojis)"
	}
	perRow := data.PerRow
	if perRow <= 0 {
		perRow = 8
	}
	var b strings.Builder
	for i, cell := range cells {
		if i == data.Selected {
			b.WriteString("[" + cell + "]")
		} else {
			b.WriteString(" " + cell + " ")
		}
		if (i+1)%perRow == 0 {
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

type SettingsPanelData struct {
	GithubSearchEnabled  bool
	CalendarEnabled      bool
	ShowAllDayEvents     bool
	StatusBarItemEnabled bool
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString(settingLine("1", "GitHub repo search", data.GithubSearchEnabled))
	b.WriteString(settingLine("2", "Calendar", data.CalendarEnabled))
	b.WriteString(settingLine("3", "Show all-day events", data.ShowAllDayEvents))
	b.WriteString(settingLine("4", "Status bar item", data.StatusBarItemEnabled))
	b.WriteString("keys: [1-4] toggle [esc] back")
	return b.String()
}

func settingLine(key, label string, enabled bool) string {
	state := "off"
	if enabled {
		state = "on"
	}
	return fmt.Sprintf("[%s] %-22s %s\n", key, label, state)
}

type TranslationPanelData struct {
	Query   string
	Results []string
}

func RenderTranslationPanel(data TranslationPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("translate: %s\n", data.Query))
	if len(data.Results) == 0 {
		b.WriteString("(waiting)")
		return b.String()
	}
	for _, result := range data.Results {
		b.WriteString("- " + result + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderScratchpad(editorView, markdownPreview string) string {
	out := "scratchpad:\n" + editorView + "\nkeys: [esc] save and close"
	if markdownPreview != "" {
		out += "\n\npreview:\n" + markdownPreview
	}
	return out
}
