package cli

import (
	"fmt"
	"time"

	"course-planner/internal/dto"
	"course-planner/internal/schedule"
	"course-planner/internal/validation"

	"github.com/spf13/cobra"
)

func newScheduleCmd() *cobra.Command {
	var req dto.ScheduleRequest

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List the class dates of a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := validation.NewValidator().ValidateScheduleRequest(req); len(errs) > 0 {
				return errs
			}
			weekdays := make([]time.Weekday, 0, len(req.Weekdays))
			for _, wd := range req.Weekdays {
				weekdays = append(weekdays, time.Weekday(wd))
			}
			sched, err := schedule.Build(schedule.Request{
				TotalHours:  req.TotalHours,
				HoursPerDay: req.HoursPerDay,
				StartDate:   req.StartDate,
				Weekdays:    weekdays,
				StartTime:   req.StartTime,
				EndTime:     req.EndTime,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "共 %d 天\n", len(sched.ScheduledDates))
			for i, d := range sched.ScheduledDates {
				fmt.Fprintf(out, "第 %d 天：%s\n", i+1, schedule.FormatDate(d))
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&req.TotalHours, "total-hours", 0, "Total course hours (required)")
	fs.Float64Var(&req.HoursPerDay, "hours-per-day", 2, "Class hours per day")
	fs.StringVar(&req.StartDate, "start", "", "First possible class date, YYYY-MM-DD (required)")
	fs.IntSliceVar(&req.Weekdays, "weekdays", []int{1, 2, 3, 4, 5}, "Class weekdays, 0 = Sunday")
	fs.StringVar(&req.StartTime, "start-time", "", "Class start time, HH:MM")
	fs.StringVar(&req.EndTime, "end-time", "", "Class end time, HH:MM")
	return cmd
}
