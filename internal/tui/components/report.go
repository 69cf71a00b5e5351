package components

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/krishemitra/krishi/internal/config"
	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
)

// WriteReport renders a recommendation as a plain-text report and
// writes it to the report directory. Returns the written path.
func WriteReport(rec model.Recommendation, lang i18n.Language) (string, error) {
	dir := config.DefaultReportDir()
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	crop := rec.EnglishName
	if crop == "" {
		crop = rec.Crop
	}
	name := fmt.Sprintf("%s-%s.txt", sanitizeFilename(crop), time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(RenderReport(rec, lang)), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// RenderReport produces the report text for a recommendation.
func RenderReport(rec model.Recommendation, lang i18n.Language) string {
	t := func(key string) string { return i18n.T(lang, key) }
	var b strings.Builder

	rule := strings.Repeat("=", 60)
	b.WriteString(rule + "\n")
	b.WriteString(t("appName") + " - " + t("recommendation") + "\n")
	b.WriteString(rule + "\n\n")

	crop := i18n.Pick(lang, rec.EnglishName, rec.Crop)
	if crop == "" {
		crop = rec.Crop
	}
	b.WriteString(fmt.Sprintf("%s: %s\n", t("cropName"), crop))
	if rec.Variety != "" {
		b.WriteString(fmt.Sprintf("%s: %s\n", t("variety"), rec.Variety))
	}
	b.WriteString(fmt.Sprintf("%s: %s\n", t("sowingDate"), rec.SowingDate))
	b.WriteString(fmt.Sprintf("%s: %.1f %s\n", t("areaSown"), rec.AreaSown, t("acres")))
	b.WriteString(fmt.Sprintf("%s: %s, %s\n", t("district"), rec.Mandal, rec.District))
	if rec.CurrentStage != "" {
		b.WriteString(fmt.Sprintf("%s: %s (%s %d)\n", t("cropStage"), rec.CurrentStage, t("daysAfterSowing"), rec.DaysAfterSowing))
	}

	if len(rec.Fertilizers) > 0 {
		b.WriteString("\n" + t("fertilizers") + "\n")
		b.WriteString(strings.Repeat("-", 60) + "\n")
		for _, f := range rec.Fertilizers {
			name := i18n.Pick(lang, f.Type, f.TeluguName)
			b.WriteString(fmt.Sprintf("  %-20s %8.1f %s  (%.1f %s/%s)  ₹%.0f  %s\n",
				name, f.AmountKg, t("kg"), f.AmountPerAcre, t("kg"), t("acre"), f.Cost, f.Timing))
		}
	}

	b.WriteString(fmt.Sprintf("\n%s: ₹%.0f\n", t("totalCost"), rec.TotalCost))
	if rec.ExpectedYieldIncrease != "" {
		b.WriteString(fmt.Sprintf("%s: %s\n", t("expectedYield"), rec.ExpectedYieldIncrease))
	}

	if len(rec.Notes) > 0 {
		b.WriteString("\n" + t("notes") + "\n")
		for _, note := range rec.Notes {
			b.WriteString("  - " + note + "\n")
		}
	}

	if s := rec.StageSchedule; s != nil && len(s.Stages) > 0 {
		b.WriteString("\n" + t("stageSchedule") + "\n")
		b.WriteString(strings.Repeat("-", 60) + "\n")
		for _, stage := range s.Stages {
			name := i18n.Pick(lang, stage.Name, stage.NameTelugu)
			b.WriteString(fmt.Sprintf("%s %d: %s", t("day"), stage.DaysAfterSowing, name))
			if stage.ApplicationDateDisplay != "" {
				b.WriteString("  (" + stage.ApplicationDateDisplay + ")")
			}
			b.WriteString("\n")
			for _, f := range stage.Fertilizers {
				fname := i18n.Pick(lang, f.Name, f.NameTelugu)
				b.WriteString(fmt.Sprintf("    %s: %.1f %s (%.1f %s/%s)\n",
					fname, f.AmountKg, t("kg"), f.AmountPerAcre, t("kg"), t("acre")))
			}
			instructions := i18n.Pick(lang, stage.InstructionsEN, stage.InstructionsTE)
			if instructions != "" {
				b.WriteString("    " + instructions + "\n")
			}
		}
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

func sanitizeFilename(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "report"
	}
	return b.String()
}
