package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okan/focusly/internal/review"
	"github.com/okan/focusly/internal/store"
)

type reviewModel struct {
	store  *store.Store
	userID int64
	width  int
	height int

	summary *review.Summary
	loadErr error

	chart barchart.Model
}

func newReviewModel(s *store.Store, userID int64) reviewModel {
	return reviewModel{
		store:  s,
		userID: userID,
		chart:  barchart.New(60, 12),
	}
}

func (r *reviewModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

func (r reviewModel) refresh() tea.Cmd {
	return func() tea.Msg {
		summary, err := review.Compute(r.store, r.userID, time.Now())
		return reviewDataMsg{summary: summary, err: err}
	}
}

func (r reviewModel) update(msg tea.Msg) (reviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewDataMsg:
		r.summary = msg.summary
		r.loadErr = msg.err
		if r.loadErr == nil {
			r.buildChart()
		}
		return r, nil
	}
	return r, nil
}

func (r *reviewModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, b := range r.summary.WeeklySeries {
		day, _ := time.Parse("2006-01-02", b.Date)
		label := day.Format("Mon 02")

		value := barchart.BarValue{
			Name:  "focus",
			Value: float64(b.FocusMinutes),
			Style: lipgloss.NewStyle().Foreground(colorPrimary),
		}
		if b.FocusMinutes == 0 {
			value.Style = lipgloss.NewStyle().Foreground(colorSubtle)
		}

		bars = append(bars, barchart.BarData{
			Label:  label,
			Values: []barchart.BarValue{value},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reviewModel) view() string {
	w := r.width - 4

	title := titleStyle.Render("Weekly Review")

	// A failed summary shows an explicit error state, never zeroed data
	// presented as real.
	if r.loadErr != nil {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			errorStyle.Render("Could not load review: "+r.loadErr.Error()),
		))
	}
	if r.summary == nil {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title, "", mutedStyle.Render("Loading...")))
	}

	todayLine := fmt.Sprintf("%s  %s focused · %d pomodoros · %d tasks done",
		highlightStyle.Render("Today"),
		formatSeconds(r.summary.FocusTodaySeconds),
		r.summary.FocusTodayPomodoros,
		r.summary.CompletedTodayCount,
	)

	chartView := r.chart.View()

	var doneRows []string
	if len(r.summary.CompletedToday) > 0 {
		doneRows = append(doneRows, titleStyle.Render("Completed today"))
		for _, t := range r.summary.CompletedToday {
			doneRows = append(doneRows, fmt.Sprintf("  %s %s",
				successStyle.Render("✓"), t.Title))
		}
	} else {
		doneRows = append(doneRows, mutedStyle.Render("No tasks completed today"))
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			todayLine,
			"",
			chartView,
			mutedStyle.Render("  focus minutes per day, trailing 7 days"),
			"",
			strings.Join(doneRows, "\n"),
		),
	)
}
