package automation

import (
	"testing"

	"go.uber.org/zap"
)

func TestRulesReturnsCopy(t *testing.T) {
	service := NewAutomationService(zap.NewNop())

	rules := service.Rules()
	if len(rules) != len(defaultRules) {
		t.Fatalf("rule count = %d, want %d", len(rules), len(defaultRules))
	}

	rules[0].Enabled = !rules[0].Enabled
	fresh := service.Rules()
	if fresh[0].Enabled == rules[0].Enabled {
		t.Error("mutating the returned slice reached the rule set")
	}
}

func TestToggle(t *testing.T) {
	service := NewAutomationService(zap.NewNop())

	rule, err := service.Toggle(4, true)
	if err != nil {
		t.Fatalf("Toggle(4, true) error = %v", err)
	}
	if !rule.Enabled {
		t.Error("rule 4 should be enabled after toggle")
	}

	// Readback confirms the flag stuck.
	for _, r := range service.Rules() {
		if r.ID == 4 && !r.Enabled {
			t.Error("toggle did not persist")
		}
	}

	rule, err = service.Toggle(4, false)
	if err != nil {
		t.Fatalf("Toggle(4, false) error = %v", err)
	}
	if rule.Enabled {
		t.Error("rule 4 should be disabled after second toggle")
	}
}

func TestToggleNotFound(t *testing.T) {
	service := NewAutomationService(zap.NewNop())

	if _, err := service.Toggle(42, true); err != ErrRuleNotFound {
		t.Errorf("Toggle(42) error = %v, want ErrRuleNotFound", err)
	}
}
