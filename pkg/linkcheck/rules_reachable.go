package linkcheck

import "context"

// Reachability is the outcome of probing an external URL.
type Reachability int

const (
	// ReachUnknown means the checker could not decide; the row's
	// verdict stays unset.
	ReachUnknown Reachability = iota

	// Reachable means the URL answered.
	Reachable

	// Unreachable means the URL did not answer.
	Unreachable
)

// ReachabilityChecker probes whether an external URL is live.
// Implementations own their timeout, rate limiting, and host exclusion
// policies; this package ships no network implementation.
type ReachabilityChecker interface {
	Check(ctx context.Context, rawURL string) Reachability
}

// AllReachableRule is the extension point for network reachability
// checking. Without a checker the all_reachable column stays unset on
// every row and no message is emitted for it.
type AllReachableRule struct {
	BaseRule
}

// NewAllReachableRule creates the all_reachable rule.
func NewAllReachableRule() *AllReachableRule {
	return &AllReachableRule{
		BaseRule: NewBaseRule(
			"LC006",
			ColAllReachable,
			"External links must be reachable (requires a checker)",
			[]string{"links", "network"},
		),
	}
}

// Apply writes all_reachable for external rows when a checker is
// configured; ReachUnknown leaves the row unset.
func (r *AllReachableRule) Apply(ctx *RuleContext) {
	if ctx.Reach == nil {
		return
	}

	for i, rec := range ctx.Table.Records {
		if !ctx.Class[i].External {
			continue
		}
		switch ctx.Reach.Check(ctx.Ctx, rec.Orig) {
		case Reachable:
			rec.AllReachable = VerdictPass
		case Unreachable:
			rec.AllReachable = VerdictFail
		case ReachUnknown:
			// Leave unset.
		}
	}
}
