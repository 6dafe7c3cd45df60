package generation

import (
	"fmt"
	"strings"

	"smart_performance/pkg/core/prompt"
)

// Task is one of the three generation flows.
type Task int

const (
	TaskKPI Task = iota + 1
	TaskImprovementPlan
	TaskPerformanceReport
)

// Tasks lists every task in UI order.
func Tasks() []Task {
	return []Task{TaskKPI, TaskImprovementPlan, TaskPerformanceReport}
}

// String is the transport tag used by the API, the CLI and the config file.
func (t Task) String() string {
	switch t {
	case TaskKPI:
		return "kpi"
	case TaskImprovementPlan:
		return "plan"
	case TaskPerformanceReport:
		return "report"
	default:
		return fmt.Sprintf("task(%d)", int(t))
	}
}

func (t Task) Valid() bool {
	return t >= TaskKPI && t <= TaskPerformanceReport
}

// PromptID maps the task to its built-in template.
func (t Task) PromptID() string {
	switch t {
	case TaskKPI:
		return prompt.IDKPI
	case TaskImprovementPlan:
		return prompt.IDImprovementPlan
	case TaskPerformanceReport:
		return prompt.IDPerformanceReport
	default:
		return ""
	}
}

// Title is the Arabic heading shown for the task.
func (t Task) Title() string {
	switch t {
	case TaskKPI:
		return "توليد مؤشرات الأداء"
	case TaskImprovementPlan:
		return "خطة التحسين"
	case TaskPerformanceReport:
		return "تقرير الأداء"
	default:
		return ""
	}
}

// ParseTask accepts the transport tags plus a few long-form aliases.
func ParseTask(s string) (Task, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kpi", "kpis", "generate":
		return TaskKPI, nil
	case "plan", "improve", "improvement-plan", "improvement_plan":
		return TaskImprovementPlan, nil
	case "report", "performance-report", "performance_report":
		return TaskPerformanceReport, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTask, s)
	}
}
