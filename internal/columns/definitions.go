// Package columns owns the grid's column universe: the static definitions,
// the display transform, and the available/selected selection state the
// drag interpreter's operations are applied to.
package columns

// Kind describes what a column cell holds, which drives cell rendering.
type Kind int

const (
	KindText Kind = iota
	KindBool
	KindCode
)

// Definition describes one grid column. Display formatting is a presentation
// concern and lives in DisplayName, not here.
type Definition struct {
	Name          string
	Kind          Kind
	DefaultHidden bool
	Thin          bool
	Filterable    bool
	Width         int // rendered width in cells, 0 for auto
}

// criterionKinds are the criterion categories curated rules are tagged with.
// Each gets its own thin, filterable column, hidden by default.
var criterionKinds = []string{
	"Age",
	"Sex",
	"LabValue",
	"PrimaryTumor",
	"Histology",
	"MolecularBiomarker",
	"GeneAlteration",
	"MolecularSignature",
	"DiagnosticFinding",
	"Metastases",
	"Comorbidity",
	"PriorTreatment",
	"CurrentTreatment",
	"TreatmentOption",
	"Contraindication",
	"ClinicalJudgement",
	"ReproductiveStatus",
	"Infection",
	"Symptom",
	"PerformanceStatus",
	"LifeExpectancy",
	"RequiredAction",
	"TissueAvailability",
	"Other",
	"And",
	"Or",
	"Not",
	"If",
	"Timing",
}

// CriterionKinds returns the criterion category names in definition order.
func CriterionKinds() []string {
	out := make([]string, len(criterionKinds))
	copy(out, criterionKinds)
	return out
}

// Definitions returns the full column universe in its default order.
func Definitions() []Definition {
	defs := []Definition{
		{Name: "TrialId", Filterable: true},
		{Name: "Cohort", Filterable: true},
		{Name: "RuleNum", DefaultHidden: true, Thin: true},
		{Name: "RuleId", DefaultHidden: true},
		{Name: "Description", Width: 48},
	}
	for _, kind := range criterionKinds {
		defs = append(defs, Definition{
			Name:          kind,
			Kind:          KindBool,
			DefaultHidden: true,
			Thin:          true,
			Filterable:    true,
		})
	}
	defs = append(defs,
		Definition{Name: "Checked", Kind: KindBool, Filterable: true, Thin: true},
		Definition{Name: "Code", Kind: KindCode},
		Definition{Name: "Error", DefaultHidden: true},
		Definition{Name: "LlmCode", Kind: KindCode, DefaultHidden: true},
		Definition{Name: "OverrideCode", Kind: KindCode, DefaultHidden: true},
	)
	return defs
}

// Lookup returns the definition for a column name.
func Lookup(name string) (Definition, bool) {
	for _, d := range Definitions() {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Names returns every column name in definition order.
func Names() []string {
	defs := Definitions()
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.Name)
	}
	return out
}
