package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"time-tracker/internal/model"
	"time-tracker/internal/repository"
)

// ReportService builds human-readable tracking summaries for daily notifications.
type ReportService struct {
	labelRepo *repository.LabelRepository
	stats     *StatsService
}

func NewReportService(labelRepo *repository.LabelRepository, stats *StatsService) *ReportService {
	return &ReportService{labelRepo: labelRepo, stats: stats}
}

// DailySummary renders the user's per-label rollups as of now, which must be
// resolved in the user's timezone by the caller.
func (s *ReportService) DailySummary(ctx context.Context, user model.User, now time.Time) (string, error) {
	labels, err := s.labelRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString("⏱ <b>Tracked time report</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format("02.01.2006")))

	if len(labels) == 0 {
		builder.WriteString("— no labels yet, /track something first\n")
		return strings.TrimSpace(builder.String()), nil
	}

	for _, label := range labels {
		stats, err := s.stats.ComputeStats(ctx, user.ID, []uint{label.ID}, now)
		if err != nil {
			return "", err
		}
		builder.WriteString(FormatLabelStats(label.Name, stats))
		builder.WriteByte('\n')
	}

	return strings.TrimSpace(builder.String()), nil
}

// FormatLabelStats renders one label's six-value rollup.
func FormatLabelStats(name string, stats LabelStats) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏷 <b>%s</b>\n", html.EscapeString(strings.TrimSpace(name))))
	sb.WriteString(fmt.Sprintf("   today %s · this week %s · last week %s\n",
		FormatMinutes(stats.Today), FormatMinutes(stats.ThisWeek), FormatMinutes(stats.LastWeek)))
	sb.WriteString(fmt.Sprintf("   this month %s · last month %s · all time %s\n",
		FormatMinutes(stats.ThisMonth), FormatMinutes(stats.LastMonth), FormatMinutes(stats.AllTime)))
	return sb.String()
}

// FormatMinutes renders a minute total as 0m / 45m / 2h 05m.
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	hours := minutes / 60
	rest := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%s%dm", sign, rest)
	}
	return fmt.Sprintf("%s%dh %02dm", sign, hours, rest)
}
