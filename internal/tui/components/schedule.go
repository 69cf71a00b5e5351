package components

import (
	"fmt"
	"strings"

	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

// ScheduleModel renders the stage-based fertilizer schedule as an
// accordion. At most one stage is expanded; toggling the expanded
// stage collapses it rather than moving the expansion elsewhere.
type ScheduleModel struct {
	schedule *model.StageSchedule
	theme    themes.Theme
	lang     i18n.Language
	cursor   int
	expanded int // -1 when every stage is collapsed
}

// NewScheduleModel creates the accordion for a schedule. The first
// stage starts expanded; a nil schedule renders nothing.
func NewScheduleModel(schedule *model.StageSchedule, lang i18n.Language, theme themes.Theme) ScheduleModel {
	expanded := -1
	if schedule != nil && len(schedule.Stages) > 0 {
		expanded = 0
	}
	return ScheduleModel{
		schedule: schedule,
		theme:    theme,
		lang:     lang,
		cursor:   0,
		expanded: expanded,
	}
}

// SetLanguage switches the UI language.
func (m *ScheduleModel) SetLanguage(lang i18n.Language) {
	m.lang = lang
}

// MoveCursor moves the stage cursor by delta, clamped to the list.
func (m *ScheduleModel) MoveCursor(delta int) {
	if m.schedule == nil || len(m.schedule.Stages) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if max := len(m.schedule.Stages) - 1; m.cursor > max {
		m.cursor = max
	}
}

// Toggle expands the stage under the cursor, or collapses it when it
// is already the expanded one.
func (m *ScheduleModel) Toggle() {
	if m.schedule == nil || len(m.schedule.Stages) == 0 {
		return
	}
	if m.expanded == m.cursor {
		m.expanded = -1
		return
	}
	m.expanded = m.cursor
}

// Expanded returns the index of the expanded stage, -1 when none.
func (m ScheduleModel) Expanded() int {
	return m.expanded
}

// Empty reports whether there is no schedule to render.
func (m ScheduleModel) Empty() bool {
	return m.schedule == nil || len(m.schedule.Stages) == 0
}

// View renders the accordion.
func (m ScheduleModel) View() string {
	if m.Empty() {
		return ""
	}
	t := func(key string) string { return i18n.T(m.lang, key) }
	s := m.schedule

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(fmt.Sprintf("📅 %s (%d %s)", t("stageSchedule"), s.TotalStages, t("stages"))))
	b.WriteString("\n")
	if s.SowingDateDisplay != "" {
		b.WriteString(m.theme.Subtitle.Render(t("sowingDate") + ": " + s.SowingDateDisplay))
		b.WriteString("\n")
	}

	b.WriteString(m.timeline())
	b.WriteString("\n\n")

	for i, stage := range s.Stages {
		b.WriteString(m.stageHeader(i, stage))
		b.WriteString("\n")
		if i == m.expanded {
			b.WriteString(m.stageBody(stage))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.theme.StatusPending.Render("💡 " + t("tip") + ": " + t("scheduleTip")))
	return b.String()
}

// timeline is the compact horizontal overview above the accordion:
// one icon per stage, the cursor's stage highlighted.
func (m ScheduleModel) timeline() string {
	parts := make([]string, 0, len(m.schedule.Stages))
	for i, stage := range m.schedule.Stages {
		label := fmt.Sprintf("%s %d", stage.Icon, stage.DaysAfterSowing)
		if i == m.cursor {
			parts = append(parts, m.theme.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, m.theme.Normal.Render(label))
		}
	}
	return strings.Join(parts, " ── ")
}

func (m ScheduleModel) stageHeader(i int, stage model.Stage) string {
	t := func(key string) string { return i18n.T(m.lang, key) }

	marker := "▸"
	if i == m.expanded {
		marker = "▾"
	}

	name := i18n.Pick(m.lang, stage.Name, stage.NameTelugu)
	header := fmt.Sprintf("%s %s %s  %s %d", marker, stage.Icon, name, t("day"), stage.DaysAfterSowing)
	if stage.ApplicationDateDisplay != "" {
		header += "  " + stage.ApplicationDateDisplay
	}

	if i == m.cursor {
		return m.theme.Selected.Render(" " + header + " ")
	}
	return m.theme.Normal.Render("  " + header)
}

func (m ScheduleModel) stageBody(stage model.Stage) string {
	t := func(key string) string { return i18n.T(m.lang, key) }

	var b strings.Builder
	if len(stage.Fertilizers) > 0 {
		b.WriteString("    " + m.theme.Label.Render(t("fertilizersToApply")) + "\n")
		for _, f := range stage.Fertilizers {
			name := i18n.Pick(m.lang, f.Name, f.NameTelugu)
			line := fmt.Sprintf("    • %s: %.1f %s (%.1f %s/%s)",
				name, f.AmountKg, t("kg"), f.AmountPerAcre, t("kg"), t("acre"))
			if f.Percentage != "" {
				line += "  " + f.Percentage
			}
			b.WriteString(m.theme.Normal.Render(line) + "\n")
		}
	}

	instructions := i18n.Pick(m.lang, stage.InstructionsEN, stage.InstructionsTE)
	if instructions != "" {
		b.WriteString("    " + m.theme.Label.Render(t("applicationInstructions")) + "\n")
		b.WriteString("    " + m.theme.Italic.Render(instructions) + "\n")
	}

	return m.theme.BorderedBox.Render(strings.TrimRight(b.String(), "\n"))
}
