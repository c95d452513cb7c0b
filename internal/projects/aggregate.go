package projects

import (
	"github.com/jonathan/career-engine/internal/types"
)

// Quality thresholds for aggregation buckets.
const (
	highQualityThreshold = 7.0
	excellentThreshold   = 8.0
	goodThreshold        = 6.0
	averageThreshold     = 4.0
)

// maxDetailedProjects caps the per-project detail kept for display.
// Aggregates still cover every project.
const maxDetailedProjects = 5

// aggregate rolls per-project scores up into totals, averages, technology
// maps and domain strengths.
func (a *Analyzer) aggregate(analyzed []types.ProjectAnalysis) types.AggregateProjectAnalysis {
	total := len(analyzed)

	var sumComplexity, sumImpact, sumQuality float64
	highQuality := 0
	recent := 0
	leadership := 0
	for _, p := range analyzed {
		sumComplexity += p.ComplexityScore
		sumImpact += p.ImpactScore
		sumQuality += p.OverallQuality
		if p.OverallQuality >= highQualityThreshold {
			highQuality++
		}
		if p.IsRecent {
			recent++
		}
		if p.RoleType == types.RoleTechLead || p.RoleType == types.RoleSeniorContributor {
			leadership++
		}
	}

	techFrequency := make(map[string]int)
	techToProjects := make(map[string][]string)
	techMaxComplexity := make(map[string]float64)
	for _, p := range analyzed {
		for _, tech := range p.Technologies {
			techFrequency[tech]++
			techToProjects[tech] = append(techToProjects[tech], p.Title)
			if p.ComplexityScore > techMaxComplexity[tech] {
				techMaxComplexity[tech] = p.ComplexityScore
			}
		}
	}

	domainScores, strongest := a.domainScores(analyzed)

	detailed := analyzed
	if len(detailed) > maxDetailedProjects {
		detailed = detailed[:maxDetailedProjects]
	}

	return types.AggregateProjectAnalysis{
		TotalProjects:          total,
		AvgComplexity:          round1(sumComplexity / float64(total)),
		AvgImpact:              round1(sumImpact / float64(total)),
		AvgQuality:             round1(sumQuality / float64(total)),
		HighQualityCount:       highQuality,
		StrongestProjectDomain: strongest,
		DomainScores:           domainScores,
		TechFrequency:          techFrequency,
		TechToProjects:         techToProjects,
		TechMaxComplexity:      techMaxComplexity,
		LeadershipExperience:   leadership > 0,
		LeadershipProjectCount: leadership,
		RecentProjects:         recent,
		DetailedProjects:       detailed,
		QualityDistribution:    qualityDistribution(analyzed),
	}
}

// domainScores weights each domain by project quality times the number of
// overlapping technologies, and returns the argmax domain. Ties keep the
// first domain in table order.
func (a *Analyzer) domainScores(analyzed []types.ProjectAnalysis) (map[string]float64, string) {
	scores := make(map[string]float64, len(a.tables.Domains))
	strongest := "General"
	best := -1.0

	for _, domain := range a.tables.Domains {
		domainSet := make(map[string]bool, len(domain.Skills))
		for _, s := range domain.Skills {
			domainSet[s] = true
		}

		var score float64
		for _, p := range analyzed {
			overlap := 0
			for _, tech := range p.Technologies {
				if domainSet[tech] {
					overlap++
				}
			}
			if overlap > 0 {
				score += p.OverallQuality * float64(overlap)
			}
		}
		scores[domain.Name] = round1(score)
		if scores[domain.Name] > best {
			best = scores[domain.Name]
			strongest = domain.Name
		}
	}
	return scores, strongest
}

func qualityDistribution(analyzed []types.ProjectAnalysis) types.QualityDistribution {
	var dist types.QualityDistribution
	for _, p := range analyzed {
		switch {
		case p.OverallQuality >= excellentThreshold:
			dist.Excellent++
		case p.OverallQuality >= goodThreshold:
			dist.Good++
		case p.OverallQuality >= averageThreshold:
			dist.Average++
		default:
			dist.BelowAverage++
		}
	}
	return dist
}

// emptyAggregate is the defined default for an empty project list.
func emptyAggregate() types.AggregateProjectAnalysis {
	return types.AggregateProjectAnalysis{
		StrongestProjectDomain: "Unknown",
		DomainScores:           map[string]float64{},
		TechFrequency:          map[string]int{},
		TechToProjects:         map[string][]string{},
		TechMaxComplexity:      map[string]float64{},
		DetailedProjects:       []types.ProjectAnalysis{},
	}
}
