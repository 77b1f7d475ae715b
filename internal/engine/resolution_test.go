package engine

import (
	"errors"
	"testing"

	"github.com/talgya/boardroom/internal/rng"
	"github.com/talgya/boardroom/internal/state"
)

// atResolution deals a game and idles through to the Resolution phase with
// no cards played and no crisis.
func atResolution(t *testing.T, cfg Config, r *rng.Source) Game {
	t.Helper()
	g := NewGame(cfg, testProjects(), quietEvents(), r)
	g, _ = mustAdvance(t, g, Empty{}, r)
	g, _ = mustAdvance(t, g, EndCardPlay{}, r)
	if g.Quarter.Phase != state.PhaseResolution {
		t.Fatalf("setup landed in %s, want Resolution", g.Quarter.Phase)
	}
	return g
}

func TestRetirementVested(t *testing.T) {
	r := rng.New(11)
	g := atResolution(t, testConfig(), r)
	g.CEO = g.CEO.WithRetirementAccrual(g.Config.RetirementThreshold)
	g.CEO.Favorability = 80 // keep the ouster threshold at zero

	g, _ = mustAdvance(t, g, Retirement{}, r)
	if !g.CEO.HasRetired {
		t.Fatal("vested retirement request was not honored")
	}
	if g.CEO.IsOusted {
		t.Fatal("retired and ousted at once")
	}

	if _, _, err := Advance(g, Empty{}, r); !errors.Is(err, ErrTerminalState) {
		t.Fatalf("post-retirement advance error = %v, want ErrTerminalState", err)
	}
}

func TestRetirementNotVestedProceeds(t *testing.T) {
	r := rng.New(11)
	g := atResolution(t, testConfig(), r)
	g.CEO.Favorability = 80

	g, _ = mustAdvance(t, g, Retirement{}, r)
	if g.CEO.HasRetired {
		t.Fatal("unvested retirement request was honored")
	}
	if g.Quarter != (state.Quarter{Number: 2, Phase: state.PhaseBoardDemand}) {
		t.Fatalf("quarter = %+v, want 2 BoardDemand", g.Quarter)
	}
	if g.CEO.QuartersSurvived != 1 {
		t.Fatalf("survived = %d, want 1", g.CEO.QuartersSurvived)
	}
}

func TestRetirementAccruesFromProfit(t *testing.T) {
	r := rng.New(11)
	cfg := testConfig()
	g := NewGame(cfg, testProjects(), quietEvents(), r)
	g, _ = mustAdvance(t, g, Empty{}, r)
	g, _ = mustAdvance(t, g, PlayCard{CardID: "alpha", EndAfter: true}, r)
	g, _ = mustAdvance(t, g, Empty{}, r)

	// Alpha pays a flat 30 with delivery at baseline: 30/5 accrues.
	if g.CEO.TotalProfit != 30 {
		t.Fatalf("total profit = %d, want 30", g.CEO.TotalProfit)
	}
	if g.CEO.RetirementBonus != 6 {
		t.Fatalf("retirement bonus = %d, want 6", g.CEO.RetirementBonus)
	}
	if g.LastProfit != 30 {
		t.Fatalf("last profit = %d, want 30", g.LastProfit)
	}
}

func TestFollowUpFires(t *testing.T) {
	cfg := testConfig()
	cfg.FollowUpChance = 1
	r := rng.New(11)
	g := NewGame(cfg, testProjects(), quietEvents(), r)

	// Quarter 1: play the tracked card; its follow-up may not echo in the
	// same quarter it was created.
	g, _ = mustAdvance(t, g, Empty{}, r)
	g, _ = mustAdvance(t, g, PlayCard{CardID: "alpha", EndAfter: true}, r)
	g, _ = mustAdvance(t, g, Empty{}, r)
	if len(g.FollowUps) != 1 {
		t.Fatalf("follow-ups after quarter 1 = %d, want 1", len(g.FollowUps))
	}

	// Quarter 2: a certain chance fires and consumes it.
	g, _ = mustAdvance(t, g, Empty{}, r)
	g, _ = mustAdvance(t, g, EndCardPlay{}, r)
	g, _ = mustAdvance(t, g, Empty{}, r)
	if len(g.FollowUps) != 0 {
		t.Fatalf("follow-ups after quarter 2 = %d, want 0", len(g.FollowUps))
	}
}

func TestFollowUpExpires(t *testing.T) {
	cfg := testConfig()
	cfg.FollowUpChance = 0
	cfg.FollowUpQuarters = 2
	r := rng.New(11)
	g := NewGame(cfg, testProjects(), quietEvents(), r)

	g, _ = mustAdvance(t, g, Empty{}, r)
	g, _ = mustAdvance(t, g, PlayCard{CardID: "alpha", EndAfter: true}, r)
	g, _ = mustAdvance(t, g, Empty{}, r)

	// Quarter 2: the zero chance never fires, so the entry is kept.
	g, _ = mustAdvance(t, g, Empty{}, r)
	g, _ = mustAdvance(t, g, EndCardPlay{}, r)
	g, _ = mustAdvance(t, g, Empty{}, r)
	if len(g.FollowUps) != 1 {
		t.Fatalf("follow-ups after quarter 2 = %d, want 1", len(g.FollowUps))
	}

	// Quarter 3: the window closes and the entry is dropped unfired.
	g, _ = mustAdvance(t, g, Empty{}, r)
	g, _ = mustAdvance(t, g, EndCardPlay{}, r)
	g, _ = mustAdvance(t, g, Empty{}, r)
	if len(g.FollowUps) != 0 {
		t.Fatalf("follow-ups after quarter 3 = %d, want 0", len(g.FollowUps))
	}
}

func TestResolutionRejectsForeignInputs(t *testing.T) {
	r := rng.New(11)
	g := atResolution(t, testConfig(), r)

	for _, in := range []Input{EndCardPlay{}, PlayCard{CardID: "alpha"}, Choice{ChoiceID: "free"}} {
		_, _, err := Advance(g, in, r)
		if !errors.Is(err, ErrUnexpectedInput) {
			t.Fatalf("%T: error = %v, want ErrUnexpectedInput", in, err)
		}
	}
}
