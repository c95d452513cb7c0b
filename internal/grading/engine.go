// Package grading combines text, skills, project analysis and capability
// analysis into a composite resume grade. The primary path delegates to the
// reasoning collaborator; any failure there degrades to the deterministic
// fallback, so Grade never returns an error.
package grading

import (
	"context"
	_ "embed"
	"encoding/json"
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-engine/internal/llm"
	"github.com/jonathan/career-engine/internal/schemas"
	"github.com/jonathan/career-engine/internal/types"
)

//go:embed grade_report_schema.json
var gradeReportSchema string

// Input carries everything the grader evaluates.
type Input struct {
	ResumeText         string
	DetectedSkills     []string
	ProjectAnalysis    types.AggregateProjectAnalysis
	CapabilityAnalysis types.CapabilityReport
}

// Engine grades resumes. The zero value is not usable; construct with
// NewEngine.
type Engine struct {
	client   llm.Client
	retry    llm.RetryPolicy
	validate *validator.Validate
}

// NewEngine creates an Engine over the given collaborator client and retry
// policy. A nil or unavailable client means every grade takes the
// deterministic path.
func NewEngine(client llm.Client, retry llm.RetryPolicy) *Engine {
	return &Engine{
		client:   client,
		retry:    retry,
		validate: validator.New(),
	}
}

// Grade produces the composite grade. The AIPowered flag on the result
// records whether the collaborator or the deterministic fallback produced
// it.
func (e *Engine) Grade(ctx context.Context, input Input) types.GradeReport {
	if e.client == nil || !e.client.Available() {
		return e.fallbackGrade(input)
	}

	report, err := e.gradeWithAI(ctx, input)
	if err != nil {
		log.Printf("AI grading failed, using deterministic fallback: %v", err)
		return e.fallbackGrade(input)
	}
	return report
}

// gradeWithAI runs the collaborator path: prompt, bounded retry, JSON
// repair, schema and range validation.
func (e *Engine) gradeWithAI(ctx context.Context, input Input) (types.GradeReport, error) {
	prompt := buildGradingPrompt(input)

	raw, err := e.retry.Do(ctx, func() (string, error) {
		return e.client.GenerateJSON(ctx, prompt)
	})
	if err != nil {
		return types.GradeReport{}, err
	}

	report, err := parseGradeReport(raw)
	if err != nil {
		// One repair attempt before giving up on the payload.
		repaired := llm.RepairJSON(raw)
		report, err = parseGradeReport(repaired)
		if err != nil {
			return types.GradeReport{}, err
		}
	}

	if err := e.validate.Struct(report); err != nil {
		return types.GradeReport{}, err
	}

	report.AIPowered = true
	return report, nil
}

// parseGradeReport validates the payload against the grade schema and
// decodes it.
func parseGradeReport(raw string) (types.GradeReport, error) {
	if err := schemas.ValidateJSONString(gradeReportSchema, raw); err != nil {
		return types.GradeReport{}, err
	}

	var report types.GradeReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return types.GradeReport{}, err
	}
	return report, nil
}
