package main

import (
	"github.com/spf13/cobra"

	"github.com/edulens/edulens-api/internal/service"
)

func examYearCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "exam-year",
		Short: "Print the entrance-exam year students are preparing for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printJSON(c.planner.ExamYear(cmd.Context()))
		},
	}
}

func deadlineCmd(c *cli) *cobra.Command {
	var q service.DeadlineQuery

	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Days left and pages per day for a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := c.planner.DeadlinePlan(cmd.Context(), q)
			if err != nil {
				return err
			}
			return c.printJSON(plan)
		},
	}

	cmd.Flags().IntVar(&q.CurrentPage, "current", 0, "current page")
	cmd.Flags().IntVar(&q.TargetPage, "target", 0, "target page")
	cmd.Flags().StringVar(&q.Deadline, "deadline", "", "deadline as YYYY-MM-DD (omit for none)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func studyTimeCmd(c *cli) *cobra.Command {
	var (
		examDate     string
		weekdayHours float64
		weekendHours float64
		subjects     int
	)

	cmd := &cobra.Command{
		Use:   "study-time",
		Short: "Estimate study hours available before an exam",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := service.StudyTimeQuery{ExamDate: examDate}
			if cmd.Flags().Changed("weekday-hours") {
				q.WeekdayHours = &weekdayHours
			}
			if cmd.Flags().Changed("weekend-hours") {
				q.WeekendHours = &weekendHours
			}
			if cmd.Flags().Changed("subjects") {
				q.Subjects = &subjects
			}

			plan, err := c.planner.StudyTime(cmd.Context(), q)
			if err != nil {
				return err
			}
			return c.printJSON(plan)
		},
	}

	cmd.Flags().StringVar(&examDate, "exam", "", "exam date as YYYY-MM-DD")
	cmd.Flags().Float64Var(&weekdayHours, "weekday-hours", 0, "study hours per weekday (default from config)")
	cmd.Flags().Float64Var(&weekendHours, "weekend-hours", 0, "study hours per weekend day (default from config)")
	cmd.Flags().IntVar(&subjects, "subjects", 0, "number of subjects (default from config)")
	_ = cmd.MarkFlagRequired("exam")

	return cmd
}
