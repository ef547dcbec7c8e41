package automation

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrRuleNotFound is returned when toggling an unknown rule id.
var ErrRuleNotFound = errors.New("automation rule not found")

type AutomationService interface {
	Rules() []AutomationRule
	Toggle(id int, enabled bool) (*AutomationRule, error)
}

type AutomationServiceImpl struct {
	mu     sync.Mutex
	rules  []AutomationRule
	Logger *zap.Logger
}

func NewAutomationService(logger *zap.Logger) AutomationService {
	rules := make([]AutomationRule, len(defaultRules))
	copy(rules, defaultRules)
	return &AutomationServiceImpl{rules: rules, Logger: logger}
}

// Rules returns a copy of the rule list.
func (s *AutomationServiceImpl) Rules() []AutomationRule {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]AutomationRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Toggle flips the enabled flag of one rule and returns the updated copy.
func (s *AutomationServiceImpl) Toggle(id int, enabled bool) (*AutomationRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rules {
		if s.rules[i].ID == id {
			s.rules[i].Enabled = enabled
			rule := s.rules[i]
			s.Logger.Info("automation rule toggled", zap.Int("ruleId", id), zap.Bool("enabled", enabled))
			return &rule, nil
		}
	}
	return nil, ErrRuleNotFound
}
