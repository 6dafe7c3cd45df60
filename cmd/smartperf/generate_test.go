package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smart_performance/pkg/core/generation"
	"smart_performance/pkg/core/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text  string
	err   error
	calls int
	task  generation.Task
	input string
}

func (f *fakeGenerator) Generate(ctx context.Context, task generation.Task, input string) (string, error) {
	f.calls++
	f.task = task
	f.input = input
	return f.text, f.err
}

func execute(t *testing.T, gen *fakeGenerator, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmdWith(&rootOptions{
		newGenerator: func(context.Context, *rootOptions) (job.Generator, func(), error) {
			return gen, nil, nil
		},
	})

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestKPICommand_Args(t *testing.T) {
	gen := &fakeGenerator{text: "# خدمة العملاء"}
	stdout, _, err := execute(t, gen, "", "kpi", "خدمة", "العملاء")
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, generation.TaskKPI, gen.task)
	assert.Equal(t, "خدمة العملاء", gen.input)
	assert.Equal(t, "# خدمة العملاء\n", stdout)
}

func TestPlanCommand_Stdin(t *testing.T) {
	gen := &fakeGenerator{text: "# خطة"}
	_, _, err := execute(t, gen, "  مؤشر رضا العملاء: المستهدف 90%، الفعلي 75%\n", "plan")
	require.NoError(t, err)

	assert.Equal(t, generation.TaskImprovementPlan, gen.task)
	assert.Equal(t, "مؤشر رضا العملاء: المستهدف 90%، الفعلي 75%", gen.input)
}

func TestCommand_EmptyInput(t *testing.T) {
	gen := &fakeGenerator{}
	_, _, err := execute(t, gen, "   \n", "report")
	assert.ErrorIs(t, err, generation.ErrEmptyInput)
	assert.Equal(t, 0, gen.calls)
}

func TestCommand_EmptyResultPrintsFallback(t *testing.T) {
	gen := &fakeGenerator{}
	stdout, _, err := execute(t, gen, "", "report", "x")
	require.NoError(t, err)
	assert.Equal(t, generation.FallbackText(generation.TaskPerformanceReport)+"\n", stdout)
}

func TestCommand_ErrorPrintsLocalizedMessage(t *testing.T) {
	gen := &fakeGenerator{err: generation.ErrMissingCredential}
	_, stderr, err := execute(t, gen, "", "plan", "x")
	assert.True(t, errors.Is(err, generation.ErrMissingCredential))
	assert.Contains(t, stderr, generation.ErrorText(generation.TaskImprovementPlan))
}

func TestCommand_HTMLToFile(t *testing.T) {
	gen := &fakeGenerator{text: "| المؤشر | الحالة |\n|---|---|\n| المبيعات | ✅ |"}
	out := filepath.Join(t.TempDir(), "report.html")

	_, stderr, err := execute(t, gen, "", "report", "--html", "--out", out, "x")
	require.NoError(t, err)
	assert.Contains(t, stderr, out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `dir="rtl"`)
	assert.Contains(t, string(data), `class="kpi-table"`)
	assert.Contains(t, string(data), "<title>"+generation.TaskPerformanceReport.Title()+"</title>")
}

func TestCommand_HTMLTitleFromHeading(t *testing.T) {
	gen := &fakeGenerator{text: "# خدمة العملاء\n\n## نظرة عامة (Overview)"}
	stdout, _, err := execute(t, gen, "", "kpi", "--html", "خدمة العملاء")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<title>خدمة العملاء</title>")
}

func TestCommand_DryRunSendsNothing(t *testing.T) {
	gen := &fakeGenerator{}
	stdout, _, err := execute(t, gen, "", "kpi", "--dry-run", "خدمة العملاء")
	require.NoError(t, err)

	assert.Equal(t, 0, gen.calls)
	assert.Contains(t, stdout, "model: gemini-3-flash-preview")
	assert.Contains(t, stdout, "temperature: 0.7")
	assert.Contains(t, stdout, "Generate KPAs and KPIs for the following practice: خدمة العملاء")
}

func TestReadInput(t *testing.T) {
	got, err := readInput([]string{" a ", "b"}, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "a  b", got)

	got, err = readInput(nil, strings.NewReader("from stdin\n"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	_, err = readInput(nil, strings.NewReader(""))
	assert.ErrorIs(t, err, generation.ErrEmptyInput)
}
