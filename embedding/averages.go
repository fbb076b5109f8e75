package embedding

import "github.com/poiesic/prospector/core"

// Average ties one averaged namespace to the artifact it completes and the
// person list it is computed from.
type Average struct {
	Kind      core.ArtifactKind
	Namespace string
	Field     string
	Items     func(*core.Person) []string
}

// Averages lists every per-person average vector.
var Averages = []Average{
	{core.ArtifactSkillAverage, core.NamespaceSkillAverage, "skills", func(p *core.Person) []string { return p.TopTechnologies }},
	{core.ArtifactFeatureAverage, core.NamespaceFeatureAverage, "features", func(p *core.Person) []string { return p.TopFeatures }},
	{core.ArtifactJobTitleAverage, core.NamespaceJobTitleAverage, "jobTitles", func(p *core.Person) []string { return p.JobTitles }},
}

// AverageFor returns the average completing kind.
func AverageFor(kind core.ArtifactKind) (Average, bool) {
	for _, a := range Averages {
		if a.Kind == kind {
			return a, true
		}
	}
	return Average{}, false
}
