package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"smart_performance/pkg/core/generation"
	"smart_performance/pkg/core/input"
	"smart_performance/pkg/core/prompt"
	"smart_performance/pkg/core/render"

	"github.com/spf13/cobra"
)

type taskFlags struct {
	html   bool
	out    string
	dryRun bool
}

var taskUsage = map[generation.Task]struct{ use, short string }{
	generation.TaskKPI:               {"kpi [practice]", "Generate KPAs and KPIs for a practice"},
	generation.TaskImprovementPlan:   {"plan [kpi results]", "Build an improvement plan from KPI results"},
	generation.TaskPerformanceReport: {"report [data]", "Turn raw performance data into a report table"},
}

func newTaskCmd(task generation.Task, opts *rootOptions) *cobra.Command {
	flags := &taskFlags{}
	u := taskUsage[task]

	cmd := &cobra.Command{
		Use:   u.use,
		Short: u.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runTask(cmd.Context(), cmd, task, text, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&flags.html, "html", false, "write a printable RTL HTML document instead of markdown")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "write the result to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the prompts that would be sent and exit")
	return cmd
}

// readInput joins args, or reads all of r when there are none.
func readInput(args []string, r io.Reader) (string, error) {
	var raw string
	if len(args) > 0 {
		raw = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = string(data)
	}
	if input.Empty(raw) {
		return "", generation.ErrEmptyInput
	}
	return input.Normalize(raw), nil
}

func runTask(ctx context.Context, cmd *cobra.Command, task generation.Task, text string, flags *taskFlags, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if flags.dryRun {
		system, user, err := prompt.Build(task.PromptID(), text)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "model: %s\ntemperature: %.1f\n\n--- system ---\n%s\n\n--- user ---\n%s\n",
			generation.Model, generation.Temperature, system, user)
		return nil
	}

	gen, cleanup, err := opts.newGenerator(ctx, opts)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	out, err := gen.Generate(ctx, task, text)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), generation.ErrorText(task))
		return err
	}

	content := generation.Display(task, out, nil)
	if flags.html {
		content, err = render.Document(render.TitleOr(content, task.Title()), content)
		if err != nil {
			return err
		}
	}

	if flags.out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}
	if err := os.WriteFile(flags.out, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", flags.out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", flags.out)
	return nil
}
