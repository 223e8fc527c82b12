package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tourplan/distance"
	"github.com/katalvlaran/tourplan/logger"
	"github.com/katalvlaran/tourplan/store"
	"github.com/katalvlaran/tourplan/tsp"
)

// problem is a resolved distance source ready for the solver.
type problem struct {
	source string
	start  tsp.Location
	units  string
	matrix *distance.Matrix
}

// Execute runs inv and returns the process exit code. The route goes to
// stdout; logs go to stderr.
func Execute(ctx context.Context, inv *Invocation, stdout, stderr io.Writer) int {
	log := logger.New(inv.Config.Log, stderr)
	entry := log.WithField("run_id", uuid.NewString())

	err := execute(ctx, inv, stdout, entry)
	if err == nil {
		return ExitSuccess
	}

	code := exitCode(err)
	entry.WithError(err).Error("tourplan failed")

	return code
}

func execute(ctx context.Context, inv *Invocation, stdout io.Writer, log *logrus.Entry) error {
	var db *store.Store
	if inv.Config.Store.Path != "" {
		var err error
		if db, err = store.Open(ctx, inv.Config.Store.Path); err != nil {
			return err
		}
		defer db.Close()
		log.WithField("path", inv.Config.Store.Path).Debug("store opened")
	}

	if inv.History > 0 {
		return printHistory(ctx, db, inv.History, stdout)
	}

	p, err := resolve(ctx, inv, db)
	if err != nil {
		return err
	}
	log = log.WithFields(logrus.Fields{"source": p.source, "locations": p.matrix.Len()})

	if inv.Save != "" {
		if err = db.SaveMatrix(ctx, inv.Save, p.units, p.matrix); err != nil {
			return err
		}
		log.WithField("name", inv.Save).Info("matrix saved")
	}
	if inv.Export != "" {
		if err = export(inv.Export, p); err != nil {
			return err
		}
		log.WithField("file", inv.Export).Info("matrix exported")
	}

	sol, elapsed, err := solve(ctx, inv, p, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Optimal route: %s\n", sol.Route)
	fmt.Fprintf(stdout, "Total distance: %.2f %s\n", sol.Total, p.units)

	if db != nil {
		id, err := db.SaveRun(ctx, store.Run{
			Matrix:    p.source,
			Start:     p.start,
			Route:     sol.Route,
			Total:     sol.Total,
			Units:     p.units,
			Evaluated: sol.Evaluated,
			Workers:   inv.Config.Solver.Workers,
			Elapsed:   elapsed,
		})
		if err != nil {
			return err
		}
		log.WithField("stored_run", id).Debug("run recorded")
	}

	return nil
}

// resolve loads the distance matrix from the selected source and picks the start.
func resolve(ctx context.Context, inv *Invocation, db *store.Store) (*problem, error) {
	var (
		p   = &problem{units: distance.DefaultUnits}
		err error
	)
	switch {
	case inv.Input != "":
		doc, err := distance.LoadFile(inv.Input)
		if err != nil {
			return nil, inputError(err)
		}
		if p.matrix, err = doc.Matrix(); err != nil {
			return nil, inputError(err)
		}
		if p.start, err = doc.StartLocation(); err != nil {
			return nil, inputError(err)
		}
		p.source, p.units = inv.Input, doc.UnitsOrDefault()

	case inv.Matrix != "":
		if p.matrix, p.units, err = db.LoadMatrix(ctx, inv.Matrix); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, inputError(err)
			}
			return nil, err
		}
		p.source = inv.Matrix
		p.start = p.matrix.Names()[0]

	default:
		names := distance.SyntheticNames(inv.Random)
		if p.matrix, err = distance.Random(names, inv.Seed, randomMaxDistance, inv.Symmetric); err != nil {
			return nil, inputError(err)
		}
		p.source = "random"
		p.start = names[0]
	}

	if inv.Start != "" {
		p.start = distance.Normalize(inv.Start)
	}

	return p, nil
}

// solve runs the exact search under the configured workers and timeout.
func solve(ctx context.Context, inv *Invocation, p *problem, log *logrus.Entry) (tsp.Solution, time.Duration, error) {
	var (
		cfg = inv.Config.Solver
		n   = p.matrix.Len()
	)
	space, ok := tsp.SearchSpace(n)
	fields := logrus.Fields{"start": p.start, "workers": cfg.Workers}
	if ok {
		fields["routes"] = space
	}
	if n > cfg.WarnAbove {
		log.WithFields(fields).Warnf("%d locations exceed %d; exhaustive search may take very long", n, cfg.WarnAbove)
	}
	if missing := p.matrix.Missing(); len(missing) > 0 {
		log.WithField("missing_pairs", len(missing)).Debug("distance table has gaps")
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	log.WithFields(fields).Info("solving")
	began := time.Now()
	sol, err := tsp.SolveContext(ctx, p.start, p.matrix.Names(), p.matrix, tsp.Options{Workers: cfg.Workers})
	elapsed := time.Since(began)
	if err != nil {
		if errors.Is(err, tsp.ErrInvalidInput) ||
			errors.Is(err, tsp.ErrIncompleteDistanceData) ||
			errors.Is(err, tsp.ErrNegativeDistance) {
			return tsp.Solution{}, elapsed, inputError(err)
		}
		return tsp.Solution{}, elapsed, fmt.Errorf("solve: %w", err)
	}

	log.WithFields(logrus.Fields{
		"total":     sol.Total,
		"evaluated": sol.Evaluated,
		"elapsed":   elapsed.String(),
	}).Info("route planned")

	return sol, elapsed, nil
}

func export(path string, p *problem) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return distance.NewDocument(p.matrix, p.start, p.units).Encode(f)
}

func printHistory(ctx context.Context, db *store.Store, limit int, stdout io.Writer) error {
	runs, err := db.Runs(ctx, "", limit)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintf(stdout, "%s  %s  %-12s %10.2f %s  %s\n",
			r.CreatedAt.Format(time.RFC3339), r.ID, r.Matrix, r.Total, r.Units, r.Route)
	}

	return nil
}

func inputError(err error) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: err.Error(), Err: err}
}

// exitCode maps an execution error to the process exit code.
func exitCode(err error) int {
	var invErr *InvocationError
	if errors.As(err, &invErr) {
		return invErr.ExitCode
	}

	return ExitFailure
}
