// Package complete provides the criterion-code autocomplete source: a static
// keyword table filtered by the word prefix at the cursor. It is a pure
// lookup with no editor or rendering dependencies.
package complete

import (
	"sort"

	"github.com/trialiris/iris/internal/columns"
)

// Option categories, matching the editor's completion styling.
const (
	CategoryClass    = "class"
	CategoryProperty = "property"
	CategoryKeyword  = "keyword"
)

// Option is one completion candidate.
type Option struct {
	Label string
	Type  string
}

// criterionFields are the constructor argument names across the criterion
// schema. Kept sorted on first use.
var criterionFields = []string{
	"description",
	"exceptions",
	"age",
	"operator",
	"sex",
	"measurement",
	"unit",
	"value",
	"primary_tumor_location",
	"primary_tumor_type",
	"stage",
	"disease_extent",
	"histology_type",
	"histology_grade",
	"biomarker",
	"expression_type",
	"method",
	"gene",
	"alteration",
	"variant",
	"detection_method",
	"signature",
	"finding",
	"location",
	"comorbidity",
	"treatment",
	"treatment_type",
	"drug",
	"drug_class",
	"condition",
	"requirement",
	"status",
	"scale",
	"months",
	"action",
	"tissue",
	"criteria",
	"criterion",
	"then_criterion",
	"else_criterion",
	"min_inclusive",
	"max_inclusive",
}

// literals completed inside criterion constructor calls.
var literals = []string{"True", "False", "None"}

var table []Option

func init() {
	for _, kind := range columns.CriterionKinds() {
		table = append(table, Option{Label: kind + "Criterion", Type: CategoryClass})
	}
	for _, field := range criterionFields {
		table = append(table, Option{Label: field, Type: CategoryProperty})
	}
	for _, lit := range literals {
		table = append(table, Option{Label: lit, Type: CategoryKeyword})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Label < table[j].Label })
}

// Keywords returns the full completion table in label order.
func Keywords() []Option {
	out := make([]Option, len(table))
	copy(out, table)
	return out
}
