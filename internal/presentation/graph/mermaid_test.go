package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/testhooks/internal/plan"
	"github.com/aretw0/testhooks/internal/presentation/graph"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		plan        *plan.Plan
		overlay     *graph.GraphOverlay
		contains    []string
		notContains []string
	}{
		{
			name: "Callback Shapes",
			plan: &plan.Plan{Callbacks: []plan.Callback{
				{Name: "db", Labels: "db"},
				{Name: "cluster", Labels: "db", Shared: true},
			}},
			contains: []string{
				"cb_db([\"db\"])",
				"cb_cluster[[\"cluster\"]]",
				"label_db{{\"db\"}}",
				"label_db --> cb_db",
				"label_db --> cb_cluster",
			},
		},
		{
			name: "Labels Declared Once",
			plan: &plan.Plan{
				Callbacks: []plan.Callback{{Name: "a", Labels: "[x], y"}},
				Cases:     []plan.Case{{Name: "TestX", Labels: []string{"x", "[x]"}}},
			},
			contains: []string{
				"case_TestX[\"TestX\"]",
				"case_TestX -.-> label_x",
				"label_y --> cb_a",
			},
		},
		{
			name: "ID Sanitization",
			plan: &plan.Plan{Cases: []plan.Case{{Name: "Test/sub-case.1", Labels: []string{"a b"}}}},
			contains: []string{
				"case_Test_sub_case_1[\"Test/sub-case.1\"]",
				"label_a_b{{\"a b\"}}",
			},
		},
		{
			name: "Overlay",
			plan: &plan.Plan{Callbacks: []plan.Callback{
				{Name: "used", Labels: "a"},
				{Name: "idle", Labels: "b"},
			}},
			overlay: &graph.GraphOverlay{Fired: []string{"used"}},
			contains: []string{
				"classDef fired",
				"class cb_used fired;",
				"class cb_idle unreached;",
			},
		},
		{
			name:        "No Overlay",
			plan:        &plan.Plan{Callbacks: []plan.Callback{{Name: "a", Labels: "a"}}},
			notContains: []string{"classDef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.plan, tt.overlay)
			if !strings.HasPrefix(got, "graph LR\n") {
				t.Errorf("expected graph header, got:\n%s", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, got)
				}
			}
			if strings.Count(got, "label_x{{") > 1 {
				t.Errorf("label declared more than once:\n%s", got)
			}
		})
	}
}
