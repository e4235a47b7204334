// Package doctor runs health checks against the users file and can repair
// the problems it knows how to fix.
package doctor

import (
	"fmt"
	"io"

	"github.com/ecotrack/ecotrack/internal/logx"
	"github.com/ecotrack/ecotrack/internal/style"
)

// Status is the outcome of a single check.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// CheckContext is what every check runs against.
type CheckContext struct {
	// DataFile is the users file path.
	DataFile string
}

// CheckResult reports what a check found.
type CheckResult struct {
	Name    string
	Status  Status
	Message string
	Details []string
	FixHint string
}

// Check is a single diagnostic.
type Check interface {
	Name() string
	Description() string
	Run(ctx *CheckContext) *CheckResult
	CanFix() bool
	Fix(ctx *CheckContext) error
}

// BaseCheck supplies the name and description of a check that cannot fix
// anything.
type BaseCheck struct {
	CheckName        string
	CheckDescription string
}

func (b *BaseCheck) Name() string        { return b.CheckName }
func (b *BaseCheck) Description() string { return b.CheckDescription }
func (b *BaseCheck) CanFix() bool        { return false }

// Fix is a no-op for checks without a repair.
func (b *BaseCheck) Fix(ctx *CheckContext) error { return nil }

// FixableCheck is embedded by checks that override Fix.
type FixableCheck struct {
	BaseCheck
}

func (f *FixableCheck) CanFix() bool { return true }

// Report collects the results of a doctor run.
type Report struct {
	Results []*CheckResult
	Fixed   []string
}

// Worst returns the most severe status in the report.
func (r *Report) Worst() Status {
	worst := StatusOK
	for _, res := range r.Results {
		if res.Status > worst {
			worst = res.Status
		}
	}
	return worst
}

// Doctor runs a fixed list of checks.
type Doctor struct {
	checks []Check
}

// New creates a doctor with the given checks, or the default set when none
// are passed.
func New(checks ...Check) *Doctor {
	if len(checks) == 0 {
		checks = DefaultChecks()
	}
	return &Doctor{checks: checks}
}

// DefaultChecks returns every users file check in run order.
func DefaultChecks() []Check {
	return []Check{
		NewDataFileCheck(),
		NewDuplicateUsersCheck(),
		NewStaleTempFilesCheck(),
	}
}

// Run executes every check. With fix set, fixable checks that did not pass
// are repaired and run again so the report shows the state after the fix.
func (d *Doctor) Run(ctx *CheckContext, fix bool) (*Report, error) {
	report := &Report{}
	for _, c := range d.checks {
		res := c.Run(ctx)
		logx.Debug("doctor check", "check", c.Name(), "status", res.Status.String())

		if fix && res.Status != StatusOK && c.CanFix() {
			if err := c.Fix(ctx); err != nil {
				return report, fmt.Errorf("fixing %s: %w", c.Name(), err)
			}
			report.Fixed = append(report.Fixed, c.Name())
			logx.Info("doctor fixed", "check", c.Name())
			res = c.Run(ctx)
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

// Print writes a human readable report to w.
func (r *Report) Print(w io.Writer) {
	for _, res := range r.Results {
		prefix := style.SuccessPrefix
		switch res.Status {
		case StatusWarning:
			prefix = style.WarningPrefix
		case StatusError:
			prefix = style.ErrorPrefix
		}
		fmt.Fprintf(w, "%s %s: %s\n", prefix, res.Name, res.Message)
		for _, d := range res.Details {
			fmt.Fprintf(w, "    %s\n", style.Dim.Render(d))
		}
		if res.FixHint != "" && res.Status != StatusOK {
			fmt.Fprintf(w, "    → %s\n", res.FixHint)
		}
	}
	for _, name := range r.Fixed {
		fmt.Fprintf(w, "%s Fixed %s\n", style.SuccessPrefix, name)
	}
}
