// Package propfirm evaluates a trade history against prop-firm evaluation
// rules: daily and maximum drawdown limits, profit targets, phase
// progression (Phase 1 -> Phase 2 -> Funded), and payout eligibility.
package propfirm

import "fmt"

// DrawdownType selects how the max-drawdown base is anchored.
type DrawdownType string

const (
	// Static measures drawdown from the account's starting balance.
	Static DrawdownType = "static"
	// Trailing measures drawdown from the highest balance reached.
	Trailing DrawdownType = "trailing"
)

// PhaseRules are the limits one evaluation phase enforces. Percentages are
// fractions of AccountSize (0.04 = 4%).
type PhaseRules struct {
	Name        string  `json:"name" yaml:"name"`
	AccountSize float64 `json:"account_size" yaml:"account_size"`

	DailyDrawdownPct float64      `json:"daily_drawdown_pct" yaml:"daily_drawdown_pct"`
	MaxDrawdownPct   float64      `json:"max_drawdown_pct" yaml:"max_drawdown_pct"`
	MaxDrawdownType  DrawdownType `json:"max_drawdown_type" yaml:"max_drawdown_type"`

	// ProfitTargetPct of 0 means no target (typical for a funded phase).
	ProfitTargetPct float64 `json:"profit_target_pct" yaml:"profit_target_pct"`
	MinTradingDays  int     `json:"min_trading_days" yaml:"min_trading_days"`

	// Funded marks the payout phase. PayoutSplitPct is the trader's share
	// of profits, e.g. 0.8.
	Funded         bool    `json:"funded" yaml:"funded"`
	PayoutSplitPct float64 `json:"payout_split_pct" yaml:"payout_split_pct"`
}

// DailyLimit is the absolute daily loss limit in account currency.
func (r PhaseRules) DailyLimit() float64 {
	return r.AccountSize * r.DailyDrawdownPct
}

// MaxLimit is the absolute max-drawdown limit in account currency.
func (r PhaseRules) MaxLimit() float64 {
	return r.AccountSize * r.MaxDrawdownPct
}

// ProfitTarget is the absolute profit target, 0 when the phase has none.
func (r PhaseRules) ProfitTarget() float64 {
	return r.AccountSize * r.ProfitTargetPct
}

// Validate rejects rule sets the evaluator cannot work with.
func (r PhaseRules) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("phase name is required")
	}
	if r.AccountSize <= 0 {
		return fmt.Errorf("phase %s: account_size must be positive", r.Name)
	}
	if r.DailyDrawdownPct <= 0 || r.DailyDrawdownPct >= 1 {
		return fmt.Errorf("phase %s: daily_drawdown_pct must be in (0, 1)", r.Name)
	}
	if r.MaxDrawdownPct <= 0 || r.MaxDrawdownPct >= 1 {
		return fmt.Errorf("phase %s: max_drawdown_pct must be in (0, 1)", r.Name)
	}
	if r.MaxDrawdownType != Static && r.MaxDrawdownType != Trailing {
		return fmt.Errorf("phase %s: max_drawdown_type must be %q or %q", r.Name, Static, Trailing)
	}
	if r.ProfitTargetPct < 0 {
		return fmt.Errorf("phase %s: profit_target_pct must not be negative", r.Name)
	}
	if r.MinTradingDays < 0 {
		return fmt.Errorf("phase %s: min_trading_days must not be negative", r.Name)
	}
	if r.Funded && (r.PayoutSplitPct <= 0 || r.PayoutSplitPct > 1) {
		return fmt.Errorf("phase %s: payout_split_pct must be in (0, 1]", r.Name)
	}
	return nil
}

// Program is an ordered list of phases a trader progresses through.
type Program struct {
	Name   string       `json:"name" yaml:"name"`
	Phases []PhaseRules `json:"phases" yaml:"phases"`
}

// Phase returns the named phase.
func (p Program) Phase(name string) (PhaseRules, error) {
	for _, ph := range p.Phases {
		if ph.Name == name {
			return ph, nil
		}
	}
	return PhaseRules{}, fmt.Errorf("program %s: no phase %q", p.Name, name)
}

// NextPhase returns the phase following the named one, or false when the
// trader is already in the last phase.
func (p Program) NextPhase(name string) (PhaseRules, bool) {
	for i, ph := range p.Phases {
		if ph.Name == name && i+1 < len(p.Phases) {
			return p.Phases[i+1], true
		}
	}
	return PhaseRules{}, false
}

// Validate checks the program and every phase in it.
func (p Program) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("program name is required")
	}
	if len(p.Phases) == 0 {
		return fmt.Errorf("program %s: at least one phase is required", p.Name)
	}
	seen := make(map[string]bool, len(p.Phases))
	for _, ph := range p.Phases {
		if err := ph.Validate(); err != nil {
			return err
		}
		if seen[ph.Name] {
			return fmt.Errorf("program %s: duplicate phase %q", p.Name, ph.Name)
		}
		seen[ph.Name] = true
	}
	return nil
}

// DefaultProgram is a two-step evaluation into a funded account: 4% daily
// and 8% static max drawdown on a $5,000 account, 8%/5% profit targets.
func DefaultProgram() Program {
	return Program{
		Name: "two-step-5k",
		Phases: []PhaseRules{
			{
				Name:             "phase1",
				AccountSize:      5000,
				DailyDrawdownPct: 0.04,
				MaxDrawdownPct:   0.08,
				MaxDrawdownType:  Static,
				ProfitTargetPct:  0.08,
				MinTradingDays:   3,
			},
			{
				Name:             "phase2",
				AccountSize:      5000,
				DailyDrawdownPct: 0.04,
				MaxDrawdownPct:   0.08,
				MaxDrawdownType:  Static,
				ProfitTargetPct:  0.05,
				MinTradingDays:   3,
			},
			{
				Name:             "funded",
				AccountSize:      5000,
				DailyDrawdownPct: 0.04,
				MaxDrawdownPct:   0.08,
				MaxDrawdownType:  Static,
				MinTradingDays:   5,
				Funded:           true,
				PayoutSplitPct:   0.80,
			},
		},
	}
}
