package cli

import (
	"fmt"

	"course-planner/internal/dto"
	"course-planner/internal/prompt"
	"course-planner/internal/service"
	"course-planner/internal/validation"

	"github.com/spf13/cobra"
)

func newNamesCmd(app *App) *cobra.Command {
	var req dto.ClassNamesRequest

	cmd := &cobra.Command{
		Use:   "names",
		Short: "Suggest three class names",
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := validation.NewValidator().ValidateClassNamesRequest(req); len(errs) > 0 {
				return errs
			}
			r := app.Generation.GenerateClassNames(cmd.Context(), req.Topic, req.Audience, req.Keywords)
			if err := resultError(r); err != nil {
				return err
			}
			printList(cmd.OutOrStdout(), r.Data)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Topic, "topic", "", "Course topic (required)")
	cmd.Flags().StringVar(&req.Audience, "audience", "", "Target audience (required)")
	cmd.Flags().StringVar(&req.Keywords, "keywords", "", "Keywords every name must contain")
	return cmd
}

func newCurriculumCmd(app *App) *cobra.Command {
	var flags courseFlags
	var day int

	cmd := &cobra.Command{
		Use:   "curriculum",
		Short: "Generate the plan of one course day",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.CurriculumRequest{Course: flags.info, Day: day}
			if errs := validation.NewValidator().ValidateCurriculumRequest(req); len(errs) > 0 {
				return errs
			}
			r := app.Generation.GenerateDayCurriculum(cmd.Context(), req.Course.ToDomain(), day)
			if err := resultError(r); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), prompt.RenderDay(day, r.Data))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&day, "day", 1, "Course day to plan (1-based)")
	return cmd
}

func newCourseCmd(app *App) *cobra.Command {
	var flags courseFlags

	cmd := &cobra.Command{
		Use:   "course",
		Short: "Generate the plan of every course day",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.CourseRequest{Course: flags.info}
			if errs := validation.NewValidator().ValidateCourseRequest(req); len(errs) > 0 {
				return errs
			}
			r := app.Generation.GenerateCourse(cmd.Context(), req.Course.ToDomain())
			if err := resultError(r); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), prompt.RenderCurriculum(r.Data))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newPromotionCmd(app *App) *cobra.Command {
	var flags courseFlags
	var fee string
	var withCurriculum bool

	cmd := &cobra.Command{
		Use:   "promotion",
		Short: "Write promotional copy for a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := flags.course()
			if err != nil {
				return err
			}
			req := service.PromotionRequest{Info: info, Fee: fee}
			if withCurriculum {
				course := app.Generation.GenerateCourse(cmd.Context(), info)
				if err := resultError(course); err != nil {
					return err
				}
				req.Curriculum = course.Data
			}
			r := app.Generation.GeneratePromotion(cmd.Context(), req)
			if err := resultError(r); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Data)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&fee, "fee", "", "Course fee shown in the copy")
	cmd.Flags().BoolVar(&withCurriculum, "with-curriculum", false, "Generate the curriculum first and draw learning objectives from it")
	return cmd
}
