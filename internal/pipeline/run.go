// Package pipeline wires the analysis stages together for one request:
// skill detection and section extraction feed project analysis, which feeds
// capability assessment; grading and the career orchestrator then run
// concurrently off those results.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-engine/internal/capability"
	"github.com/jonathan/career-engine/internal/career"
	"github.com/jonathan/career-engine/internal/grading"
	"github.com/jonathan/career-engine/internal/projects"
	"github.com/jonathan/career-engine/internal/sections"
	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
	"github.com/jonathan/career-engine/internal/vocab"
)

// Runner executes the full analysis pipeline. All per-request state is
// local to Run; a single Runner serves concurrent requests.
type Runner struct {
	detector     *skills.Detector
	extractor    *sections.Extractor
	analyzer     *projects.Analyzer
	assessor     *capability.Assessor
	grader       *grading.Engine
	orchestrator *career.Orchestrator
}

// New builds a Runner over the given tables and grading engine.
func New(tables *vocab.Tables, grader *grading.Engine) *Runner {
	detector := skills.NewDetector(tables)
	return &Runner{
		detector:     detector,
		extractor:    sections.NewExtractor(detector),
		analyzer:     projects.NewAnalyzer(tables, detector),
		assessor:     capability.NewAssessor(),
		grader:       grader,
		orchestrator: career.NewOrchestrator(tables),
	}
}

// Run analyzes extracted resume text and merges every stage's output into
// one result. Pipeline stages never fail; only the grading branch touches
// the network, and it degrades internally.
func (r *Runner) Run(ctx context.Context, text string) types.AnalysisResult {
	detection := r.detector.Detect(text)
	resumeSections := r.extractor.Extract(text)

	projectAnalysis := r.analyzer.Analyze(resumeSections.Projects)
	capabilityReport := r.assessor.Assess(projectAnalysis, detection.Frequency)

	var (
		grade        types.GradeReport
		careerReport types.CareerReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		grade = r.grader.Grade(gctx, grading.Input{
			ResumeText:         text,
			DetectedSkills:     detection.Skills,
			ProjectAnalysis:    projectAnalysis,
			CapabilityAnalysis: capabilityReport,
		})
		return nil
	})
	g.Go(func() error {
		careerReport = r.orchestrator.Run(detection.Skills, detection.Frequency)
		return nil
	})
	_ = g.Wait() // branches handle their own failures

	return types.AnalysisResult{
		DetectedSkills:     detection.Skills,
		Analysis:           careerReport,
		ProjectAnalysis:    projectAnalysis,
		CapabilityAnalysis: capabilityReport,
		ResumeGrade:        grade,
		SectionsAnalyzed:   sections.Summarize(resumeSections),
	}
}

// DetectSkills exposes the detector for callers that need a quick skill
// count, such as the ingestion quality gate.
func (r *Runner) DetectSkills(text string) skills.Detection {
	return r.detector.Detect(text)
}
