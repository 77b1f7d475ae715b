package card

import (
	"github.com/talgya/boardroom/internal/crisis"
	"github.com/talgya/boardroom/internal/effect"
	"github.com/talgya/boardroom/internal/outcome"
	"github.com/talgya/boardroom/internal/state"
)

// Projects returns the starter project deck.
func Projects() []Project {
	return []Project{
		{
			ID:       "platform-rewrite",
			Title:    "Platform Rewrite",
			Affinity: AffinityProduct,
			Profile: OutcomeProfile{
				outcome.Good: {
					effect.Meter{Meter: state.Delivery, Delta: 12},
					effect.Profit{Delta: 10},
				},
				outcome.Expected: {
					effect.Meter{Meter: state.Delivery, Delta: 5},
					effect.Meter{Meter: state.Morale, Delta: -2},
				},
				outcome.Bad: {
					effect.Meter{Meter: state.Delivery, Delta: -8},
					effect.Meter{Meter: state.Morale, Delta: -5},
					effect.Profit{Delta: -8},
				},
			},
			FollowUp: "the rewrite's long tail",
		},
		{
			ID:       "enterprise-push",
			Title:    "Enterprise Sales Push",
			Affinity: AffinityFinance,
			Profile: OutcomeProfile{
				outcome.Good: {
					effect.Profit{Delta: 60, PerTarget: true},
					effect.Meter{Meter: state.Runway, Delta: 6},
				},
				outcome.Expected: {
					effect.Profit{Delta: 30, PerTarget: true},
				},
				outcome.Bad: {
					effect.Profit{Delta: -10},
					effect.Meter{Meter: state.Morale, Delta: -4},
				},
			},
			FollowUp: "enterprise contracts coming up for renewal",
		},
		{
			ID:       "culture-reboot",
			Title:    "Culture Reboot Offsite",
			Affinity: AffinityCulture,
			Profile: OutcomeProfile{
				outcome.Good: {
					effect.Meter{Meter: state.Morale, Delta: 12},
					effect.Meter{Meter: state.Alignment, Delta: 5},
				},
				outcome.Expected: {
					effect.Meter{Meter: state.Morale, Delta: 5},
					effect.Profit{Delta: -3},
				},
				outcome.Bad: {
					effect.Meter{Meter: state.Morale, Delta: -6},
					effect.Profit{Delta: -6},
				},
			},
		},
		{
			ID:       "compliance-overhaul",
			Title:    "Compliance Overhaul",
			Affinity: AffinityPolitics,
			Profile: OutcomeProfile{
				outcome.Good: {
					effect.Meter{Meter: state.Governance, Delta: 12},
					effect.Meter{Meter: state.Alignment, Delta: 4},
				},
				outcome.Expected: {
					effect.Meter{Meter: state.Governance, Delta: 6},
					effect.Meter{Meter: state.Delivery, Delta: -2},
				},
				outcome.Bad: {
					effect.Meter{Meter: state.Governance, Delta: 2},
					effect.Meter{Meter: state.Morale, Delta: -5},
					effect.Meter{Meter: state.Delivery, Delta: -4},
				},
			},
		},
		{
			ID:       "cost-cutting",
			Title:    "Across-the-Board Cost Cutting",
			Affinity: AffinityFinance,
			Corporate: true,
			EvilDelta: 2,
			Profile: OutcomeProfile{
				outcome.Good: {
					effect.Profit{Delta: 25},
					effect.Meter{Meter: state.Runway, Delta: 10},
					effect.Meter{Meter: state.Morale, Delta: -4},
				},
				outcome.Expected: {
					effect.Profit{Delta: 12},
					effect.Meter{Meter: state.Runway, Delta: 5},
					effect.Meter{Meter: state.Morale, Delta: -6},
				},
				outcome.Bad: {
					effect.Profit{Delta: 4},
					effect.Meter{Meter: state.Morale, Delta: -12},
					effect.Meter{Meter: state.Delivery, Delta: -6},
				},
			},
			FollowUp: "the people cost cutting pushed out",
		},
		{
			ID:       "moonshot-lab",
			Title:    "Moonshot R&D Lab",
			Affinity: AffinityProduct,
			Profile: OutcomeProfile{
				outcome.Good: {
					effect.Meter{Meter: state.Delivery, Delta: 8},
					effect.Meter{Meter: state.Morale, Delta: 8},
					effect.Profit{Delta: 20},
				},
				outcome.Expected: {
					effect.Meter{Meter: state.Morale, Delta: 3},
					effect.Profit{Delta: -5},
				},
				outcome.Bad: {
					effect.Profit{Delta: -15},
					effect.Meter{Meter: state.Runway, Delta: -6},
				},
			},
			FollowUp: "whatever the lab is cooking",
		},
		{
			ID:       "investor-roadshow",
			Title:    "Investor Roadshow",
			Affinity: AffinityPolitics,
			Profile: OutcomeProfile{
				outcome.Good: {
					effect.Meter{Meter: state.Runway, Delta: 12},
					effect.Meter{Meter: state.Alignment, Delta: 6},
				},
				outcome.Expected: {
					effect.Meter{Meter: state.Runway, Delta: 6},
				},
				outcome.Bad: {
					effect.Meter{Meter: state.Alignment, Delta: -6},
					effect.Meter{Meter: state.Runway, Delta: -2},
				},
			},
		},
		{
			ID:       "aggressive-pricing",
			Title:    "Aggressive Pricing Scheme",
			Affinity: AffinityFinance,
			Corporate: true,
			EvilDelta: 3,
			Profile: OutcomeProfile{
				outcome.Good: {
					effect.Profit{Delta: 70, PerTarget: true},
					effect.Meter{Meter: state.Governance, Delta: -3},
				},
				outcome.Expected: {
					effect.Profit{Delta: 35, PerTarget: true},
					effect.Meter{Meter: state.Governance, Delta: -4},
				},
				outcome.Bad: {
					effect.Profit{Delta: -12},
					effect.Meter{Meter: state.Governance, Delta: -8},
					effect.Meter{Meter: state.Alignment, Delta: -5},
				},
			},
			FollowUp: "regulators sniffing at the pricing scheme",
		},
		{
			ID:       "dev-experience",
			Title:    "Developer Experience Sprint",
			Affinity: AffinityProduct,
			Profile: OutcomeProfile{
				outcome.Good: {
					effect.Meter{Meter: state.Delivery, Delta: 8},
					effect.Meter{Meter: state.Morale, Delta: 6},
				},
				outcome.Expected: {
					effect.Meter{Meter: state.Delivery, Delta: 4},
					effect.Meter{Meter: state.Morale, Delta: 2},
				},
				outcome.Bad: {
					effect.Meter{Meter: state.Delivery, Delta: -3},
					effect.Profit{Delta: -4},
				},
			},
		},
		{
			ID:       "town-hall",
			Title:    "All-Hands Town Hall",
			Affinity: AffinityCulture,
			Profile: OutcomeProfile{
				outcome.Good: {
					effect.Meter{Meter: state.Alignment, Delta: 10},
					effect.Meter{Meter: state.Morale, Delta: 4},
				},
				outcome.Expected: {
					effect.Meter{Meter: state.Alignment, Delta: 5},
				},
				outcome.Bad: {
					effect.Meter{Meter: state.Alignment, Delta: -4},
					effect.Meter{Meter: state.Morale, Delta: -4},
				},
			},
		},
	}
}

// Events returns the starter event deck. Every event card carries 2-4
// choices; most also spawn a tracked crisis.
func Events() []Event {
	return []Event{
		mustEvent("prod-outage", "Black Friday Production Outage",
			[]Choice{
				{
					ID:              "war-room",
					Text:            "Spin up a war room and pay for outside reliability engineers",
					Cost:            2,
					MitigationBonus: 3,
					StaffWeights:    crisis.StaffWeights{Inept: 1, Standard: 4, Good: 5},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Delivery, Delta: 6},
							effect.Meter{Meter: state.Morale, Delta: 2},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Delivery, Delta: 2},
							effect.Profit{Delta: -4},
						},
						outcome.Bad: {
							effect.Profit{Delta: -10},
						},
					},
				},
				{
					ID:   "ride-it-out",
					Text: "Let the on-call rotation ride it out",
					StaffWeights: crisis.StaffWeights{Inept: 3, Standard: 6, Good: 1},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Delivery, Delta: 2},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Delivery, Delta: -3},
							effect.Meter{Meter: state.Morale, Delta: -3},
						},
						outcome.Bad: {
							effect.Meter{Meter: state.Delivery, Delta: -8},
							effect.Profit{Delta: -12},
						},
					},
				},
				{
					ID:        "blame-vendor",
					Text:      "Blame the cloud vendor in public and quietly settle",
					Corporate: true,
					MitigationBonus: 1,
					StaffWeights:    crisis.StaffWeights{Inept: 2, Standard: 6, Good: 2},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Alignment, Delta: 3},
							effect.Profit{Delta: 2},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Governance, Delta: -3},
						},
						outcome.Bad: {
							effect.Meter{Meter: state.Governance, Delta: -8},
							effect.Meter{Meter: state.Alignment, Delta: -5},
						},
					},
				},
			},
			&crisis.Template{
				ID:               "prod-outage",
				Name:             "production outage fallout",
				Severity:         3,
				DeadlineQuarters: 2,
				BaseImpact:       map[state.Meter]int{state.Delivery: -6},
				OngoingImpact:    map[state.Meter]int{state.Delivery: -2, state.Morale: -1},
				MinSpend:         2,
			},
		),
		mustEvent("press-leak", "Internal Memo Leaks to the Press",
			[]Choice{
				{
					ID:              "own-it",
					Text:            "Own the memo in an open letter",
					MitigationBonus: 2,
					StaffWeights:    crisis.StaffWeights{Inept: 1, Standard: 5, Good: 4},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Morale, Delta: 6},
							effect.Meter{Meter: state.Alignment, Delta: 4},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Morale, Delta: 2},
						},
						outcome.Bad: {
							effect.Meter{Meter: state.Alignment, Delta: -5},
						},
					},
				},
				{
					ID:        "hunt-leaker",
					Text:      "Hire investigators to hunt the leaker",
					Corporate: true,
					StaffWeights: crisis.StaffWeights{Inept: 3, Standard: 5, Good: 2},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Governance, Delta: 4},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Morale, Delta: -5},
						},
						outcome.Bad: {
							effect.Meter{Meter: state.Morale, Delta: -10},
							effect.Meter{Meter: state.Governance, Delta: -4},
						},
					},
				},
			},
			&crisis.Template{
				ID:               "press-leak",
				Name:             "press cycle from the leak",
				Severity:         2,
				DeadlineQuarters: 2,
				BaseImpact:       map[state.Meter]int{state.Alignment: -4},
				OngoingImpact:    map[state.Meter]int{state.Alignment: -2},
			},
		),
		mustEvent("key-defection", "Star VP Courted by a Rival",
			[]Choice{
				{
					ID:              "counter-offer",
					Text:            "Make an aggressive counter-offer",
					Cost:            1,
					MitigationBonus: 2,
					StaffWeights:    crisis.StaffWeights{Inept: 1, Standard: 5, Good: 4},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Delivery, Delta: 4},
							effect.Meter{Meter: state.Morale, Delta: 3},
						},
						outcome.Expected: {
							effect.Profit{Delta: -5},
						},
						outcome.Bad: {
							effect.Profit{Delta: -8},
							effect.Meter{Meter: state.Morale, Delta: -3},
						},
					},
				},
				{
					ID:   "let-them-go",
					Text: "Wish them well and promote from within",
					StaffWeights: crisis.StaffWeights{Inept: 2, Standard: 6, Good: 2},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Morale, Delta: 6},
							effect.Meter{Meter: state.Alignment, Delta: 3},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Delivery, Delta: -3},
						},
						outcome.Bad: {
							effect.Meter{Meter: state.Delivery, Delta: -8},
							effect.Meter{Meter: state.Alignment, Delta: -3},
						},
					},
				},
				{
					ID:        "poison-well",
					Text:      "Whisper doubts about the rival to the trade press",
					Corporate: true,
					StaffWeights: crisis.StaffWeights{Inept: 2, Standard: 5, Good: 3},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Delivery, Delta: 3},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Governance, Delta: -3},
						},
						outcome.Bad: {
							effect.Meter{Meter: state.Governance, Delta: -6},
							effect.Meter{Meter: state.Alignment, Delta: -4},
						},
					},
				},
			},
			nil,
		),
		mustEvent("audit-notice", "Surprise Regulatory Audit",
			[]Choice{
				{
					ID:              "full-cooperation",
					Text:            "Open the books and staff the audit properly",
					Cost:            2,
					MitigationBonus: 4,
					StaffWeights:    crisis.StaffWeights{Inept: 1, Standard: 4, Good: 5},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Governance, Delta: 8},
							effect.Meter{Meter: state.Alignment, Delta: 3},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Governance, Delta: 3},
							effect.Profit{Delta: -4},
						},
						outcome.Bad: {
							effect.Profit{Delta: -8},
						},
					},
				},
				{
					ID:   "minimal-compliance",
					Text: "Provide exactly what the letter of the law requires",
					StaffWeights: crisis.StaffWeights{Inept: 2, Standard: 7, Good: 1},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Governance, Delta: 2},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Governance, Delta: -2},
						},
						outcome.Bad: {
							effect.Meter{Meter: state.Governance, Delta: -6},
							effect.Profit{Delta: -10},
						},
					},
				},
				{
					ID:        "shred-and-spin",
					Text:      "Reclassify the awkward documents before handing anything over",
					Corporate: true,
					StaffWeights: crisis.StaffWeights{Inept: 3, Standard: 5, Good: 2},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Profit{Delta: 5},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Governance, Delta: -5},
						},
						outcome.Bad: {
							effect.Meter{Meter: state.Governance, Delta: -12},
							effect.Meter{Meter: state.Runway, Delta: -5},
						},
					},
				},
				{
					ID:              "settle-early",
					Text:            "Negotiate an early settlement",
					Cost:            1,
					MitigationBonus: 1,
					StaffWeights:    crisis.StaffWeights{Inept: 1, Standard: 6, Good: 3},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Governance, Delta: 4},
							effect.Profit{Delta: -3},
						},
						outcome.Expected: {
							effect.Profit{Delta: -6},
						},
						outcome.Bad: {
							effect.Profit{Delta: -10},
							effect.Meter{Meter: state.Governance, Delta: -3},
						},
					},
				},
			},
			&crisis.Template{
				ID:               "audit-notice",
				Name:             "regulatory audit",
				Severity:         4,
				DeadlineQuarters: 3,
				BaseImpact:       map[state.Meter]int{state.Governance: -5},
				OngoingImpact:    map[state.Meter]int{state.Governance: -2, state.Runway: -1},
				MinSpend:         2,
			},
		),
		mustEvent("burnout-wave", "Burnout Wave in Engineering",
			[]Choice{
				{
					ID:              "hire-relief",
					Text:            "Budget emergency hires and a real on-call rota",
					Cost:            1,
					MitigationBonus: 2,
					StaffWeights:    crisis.StaffWeights{Inept: 1, Standard: 5, Good: 4},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Morale, Delta: 8},
							effect.Meter{Meter: state.Delivery, Delta: 3},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Morale, Delta: 4},
							effect.Profit{Delta: -4},
						},
						outcome.Bad: {
							effect.Profit{Delta: -8},
						},
					},
				},
				{
					ID:        "pizza-party",
					Text:      "Declare a wellness week and order pizza",
					Corporate: true,
					StaffWeights: crisis.StaffWeights{Inept: 4, Standard: 5, Good: 1},
					Profile: OutcomeProfile{
						outcome.Good: {
							effect.Meter{Meter: state.Morale, Delta: 2},
						},
						outcome.Expected: {
							effect.Meter{Meter: state.Morale, Delta: -4},
						},
						outcome.Bad: {
							effect.Meter{Meter: state.Morale, Delta: -8},
							effect.Meter{Meter: state.Delivery, Delta: -4},
						},
					},
				},
			},
			&crisis.Template{
				ID:               "burnout-wave",
				Name:             "engineering burnout",
				Severity:         3,
				DeadlineQuarters: 2,
				BaseImpact:       map[state.Meter]int{state.Morale: -6},
				OngoingImpact:    map[state.Meter]int{state.Morale: -2, state.Delivery: -1},
				MinSpend:         1,
			},
		),
	}
}
