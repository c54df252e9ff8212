package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"course-planner/internal/domain"
	"course-planner/internal/dto"
	"course-planner/internal/service"
	"course-planner/internal/validation"

	"github.com/spf13/cobra"
)

// App holds the services the commands run against.
type App struct {
	Generation service.GenerationService
}

// NewRootCmd creates the top-level "coursegen" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "coursegen",
		Short:         "Generate course material from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newNamesCmd(app),
		newCurriculumCmd(app),
		newCourseCmd(app),
		newPromotionCmd(app),
		newScheduleCmd(),
	)

	return root
}

// courseFlags are the course metadata flags shared by the generation commands.
type courseFlags struct {
	info dto.CourseInfo
}

func (f *courseFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.info.ClassName, "class-name", "", "Class name")
	fs.StringVar(&f.info.Topic, "topic", "", "Course topic (required)")
	fs.StringVar(&f.info.Description, "description", "", "What the course teaches")
	fs.StringVar(&f.info.Audience, "audience", "", "Target audience (required)")
	fs.StringVar(&f.info.Category, "category", string(domain.CategoryVocational), "children or vocational")
	fs.IntVar(&f.info.TotalDays, "days", 1, "Number of course days")
	fs.Float64Var(&f.info.HoursPerDay, "hours-per-day", 2, "Class hours per day")
}

func (f *courseFlags) course() (domain.CourseInfo, error) {
	if errs := validation.NewValidator().ValidateCourseInfo(f.info); len(errs) > 0 {
		return domain.CourseInfo{}, errs
	}
	return f.info.ToDomain(), nil
}

// resultError turns a failed Result into a command error.
func resultError[T any](r domain.Result[T]) error {
	if r.Success {
		return nil
	}
	return errors.New(r.Error)
}

func printList(w io.Writer, items []string) {
	for i, item := range items {
		fmt.Fprintf(w, "%d. %s\n", i+1, strings.TrimSpace(item))
	}
}
