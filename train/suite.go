package train

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zeu5/tictactoe-rl/agent"
	"github.com/zeu5/tictactoe-rl/util"
)

const progressRefresh = 250 * time.Millisecond

// Matchup names one training pairing: a learning agent on the X seat against
// a fixed opponent on O.
type Matchup struct {
	Learner  string `json:"learner"`
	Opponent string `json:"opponent"`
}

func (m Matchup) Name() string {
	return m.Learner + "-vs-" + m.Opponent
}

// StandardMatchups returns the default suite: both table learners against
// both non-learning opponents.
func StandardMatchups() []Matchup {
	return []Matchup{
		{Learner: "qlearning", Opponent: "random"},
		{Learner: "qlearning", Opponent: "scripted"},
		{Learner: "sarsa", Opponent: "random"},
		{Learner: "sarsa", Opponent: "scripted"},
	}
}

// Result bundles everything one trained matchup produced. The trained learner
// is kept so callers can evaluate it or seat it against a human.
type Result struct {
	Matchup Matchup  `json:"matchup"`
	Stats   *Stats   `json:"stats"`
	History *History `json:"history"`

	Learner agent.Agent `json:"-"`
}

// SuiteConfig carries the knobs shared by every matchup of a suite run.
// Progress turns the live terminal display on.
type SuiteConfig struct {
	Episodes           int
	CheckpointInterval int
	Parallelism        int
	Progress           bool
	Agent              agent.Config
}

// Suite trains a set of matchups, each on its own worker. Matchups run in
// parallel, the episodes inside a matchup never do.
type Suite struct {
	matchups []Matchup
	cfg      SuiteConfig

	log *zap.SugaredLogger
}

func NewSuite(matchups []Matchup, cfg SuiteConfig, log *zap.SugaredLogger) *Suite {
	return &Suite{
		matchups: matchups,
		cfg:      cfg,
		log:      log,
	}
}

type suiteWork struct {
	matchup Matchup
	out     *util.ParallelOutput
	wg      *sync.WaitGroup
}

type suiteResult struct {
	result *Result
	err    error
}

// Run trains every matchup and returns the results keyed by matchup name.
// The first matchup error aborts the run.
func (s *Suite) Run(ctx context.Context) (map[string]*Result, error) {
	parallelism := s.cfg.Parallelism
	if parallelism > len(s.matchups) {
		parallelism = len(s.matchups)
	}

	var printer *util.TerminalPrinter
	if s.cfg.Progress {
		printer = util.NewTerminalPrinter(progressRefresh)
	}

	workCh := make(chan *suiteWork, parallelism)
	resultsCh := make(chan *suiteResult, len(s.matchups))

	for i := 0; i < parallelism; i++ {
		go s.worker(ctx, workCh, resultsCh)
	}

	// Register every line before the printer starts so the display height
	// is fixed.
	wg := new(sync.WaitGroup)
	pending := make([]*suiteWork, 0, len(s.matchups))
	for _, mu := range s.matchups {
		work := &suiteWork{
			matchup: mu,
			wg:      wg,
		}
		if printer != nil {
			work.out = printer.NewOutput()
		}
		pending = append(pending, work)
	}
	if printer != nil {
		printer.Start(ctx)
	}

	results := make(map[string]*Result)
	var firstErr error
	gathered := make(chan struct{})
	go func() {
		defer close(gathered)
		for r := range resultsCh {
			if r.err != nil && firstErr == nil {
				firstErr = r.err
			}
			if r.result != nil {
				results[r.result.Matchup.Name()] = r.result
			}
		}
	}()

	var dispatchErr error
dispatch:
	for _, work := range pending {
		wg.Add(1)
		select {
		case <-ctx.Done():
			wg.Done()
			dispatchErr = ctx.Err()
			break dispatch
		case workCh <- work:
		}
	}

	wg.Wait()
	close(workCh)
	close(resultsCh)
	<-gathered
	if printer != nil {
		printer.Stop()
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if dispatchErr != nil {
		return nil, dispatchErr
	}
	return results, nil
}

// worker exits only when workCh closes. A cancelled context surfaces as a
// runMatchup error, so every dispatched item reaches its Done call.
func (s *Suite) worker(ctx context.Context, workCh <-chan *suiteWork, resultsCh chan<- *suiteResult) {
	for {
		work, more := <-workCh
		if !more {
			return
		}
		result, err := s.runMatchup(ctx, work)
		resultsCh <- &suiteResult{result: result, err: err}
		work.wg.Done()
	}
}

// runMatchup builds fresh agents for the pairing and trains them, so parallel
// matchups never share a table or a random source.
func (s *Suite) runMatchup(ctx context.Context, work *suiteWork) (*Result, error) {
	learner, err := agent.New(work.matchup.Learner, s.cfg.Agent)
	if err != nil {
		return nil, fmt.Errorf("matchup %s: %w", work.matchup.Name(), err)
	}
	opponent, err := agent.New(work.matchup.Opponent, s.cfg.Agent)
	if err != nil {
		return nil, fmt.Errorf("matchup %s: %w", work.matchup.Name(), err)
	}

	trainer := NewTrainer(learner, opponent, s.cfg.Episodes, s.cfg.CheckpointInterval, s.log)
	if work.out != nil {
		trainer.SetOutput(work.out)
	}
	stats, history, err := trainer.Train(ctx)
	if err != nil {
		return nil, fmt.Errorf("matchup %s: %w", work.matchup.Name(), err)
	}

	return &Result{
		Matchup: work.matchup,
		Stats:   stats,
		History: history,
		Learner: learner,
	}, nil
}
