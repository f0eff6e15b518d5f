package request

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	edc "github.com/sqpp/edc-golang"
	"github.com/sqpp/edc-golang/internal/config"
	"github.com/sqpp/edc-golang/internal/logging"
)

// ErrorKind classifies a failed job.
type ErrorKind string

const (
	// KindValidation marks caller input the engine rejected.
	KindValidation ErrorKind = "validation"
	// KindInternal marks anything else. Only the message is exposed.
	KindInternal ErrorKind = "internal"
)

// Classify maps an error to its kind.
func Classify(err error) ErrorKind {
	if edc.IsValidation(err) {
		return KindValidation
	}
	return KindInternal
}

// Outcome is the result of running one Job. Valid is set for verify
// operations only.
type Outcome struct {
	Name      string     `json:"name,omitempty" yaml:"name,omitempty"`
	Scheme    string     `json:"scheme" yaml:"scheme"`
	Op        string     `json:"op" yaml:"op"`
	Valid     *bool      `json:"valid,omitempty" yaml:"valid,omitempty"`
	Result    edc.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error     string     `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind ErrorKind  `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`

	err error
}

// Err returns the error the job failed with, if any.
func (o Outcome) Err() error { return o.err }

func (o *Outcome) fail(err error) {
	o.err = err
	o.Error = err.Error()
	o.ErrorKind = Classify(err)
}

// Runner executes jobs against the engine.
type Runner struct {
	logger   logging.Logger
	defaults Defaults
	workers  int
}

// NewRunner creates a Runner. A nil logger discards output and workers below
// one run jobs sequentially.
func NewRunner(logger logging.Logger, defaults Defaults, workers int) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Runner{logger: logger, defaults: defaults, workers: workers}
}

// DefaultsFromConfig resolves the request defaults held in cfg.
func DefaultsFromConfig(cfg *config.Config) (Defaults, error) {
	policy, err := edc.ParsePolicy(cfg.Parity)
	if err != nil {
		return Defaults{}, err
	}
	divisor, err := edc.ResolveDivisor(cfg.Divisor)
	if err != nil {
		return Defaults{}, err
	}
	return Defaults{Policy: policy, BlockSize: cfg.BlockSize, Divisor: divisor}, nil
}

// Defaults returns the defaults applied to jobs.
func (r *Runner) Defaults() Defaults { return r.defaults }

// Run executes a single job. Engine panics are reported as internal errors.
func (r *Runner) Run(job Job) (out Outcome) {
	job = job.normalize()
	out = Outcome{Name: job.Name, Scheme: job.Scheme, Op: job.Op}

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("job panicked", "job", job.Name, "scheme", job.Scheme, "panic", p)
			out.Result = nil
			out.Valid = nil
			out.fail(fmt.Errorf("internal error: %v", p))
		}
	}()

	res, err := job.execute(r.defaults)
	if err != nil {
		out.fail(err)
		r.logger.Debug("job rejected", "job", job.Name, "scheme", job.Scheme, "op", job.Op, "kind", out.ErrorKind, "error", err)
		return out
	}

	out.Result = res
	if v, ok := res.(edc.Verdict); ok {
		valid := v.Valid()
		out.Valid = &valid
	}
	r.logger.Debug("job done", "job", job.Name, "scheme", job.Scheme, "op", job.Op, "steps", len(res.Trace()))
	return out
}

// RunAll executes jobs on up to r.workers goroutines. Outcomes keep the order
// of jobs. If ctx is cancelled, jobs not yet started are skipped and the
// context error is returned with the partial outcomes.
func (r *Runner) RunAll(ctx context.Context, jobs []Job) ([]Outcome, error) {
	outcomes := make([]Outcome, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.Run(job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	failed := 0
	for _, o := range outcomes {
		if o.err != nil {
			failed++
		}
	}
	r.logger.Info("batch complete", "jobs", len(jobs), "failed", failed, "workers", r.workers)
	return outcomes, nil
}
