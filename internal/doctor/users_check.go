package doctor

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ecotrack/ecotrack/internal/user"
)

// RejectedSuffix is appended to the data file path to name the file that
// unreadable lines are moved to by DataFileCheck.Fix.
const RejectedSuffix = ".rejected"

type record struct {
	line int
	text string
	user *user.User
	err  error
}

// scanRecords parses every non-blank line of path. Unlike the store it keeps
// going past malformed lines. A missing file yields no records and no error.
func scanRecords(path string) ([]record, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is the configured data file
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var recs []record
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		u, err := user.ParseRecord(text)
		recs = append(recs, record{line: lineNo, text: text, user: u, err: err})
	}
	return recs, scanner.Err()
}

// DataFileCheck verifies every line of the users file parses. A bad line
// stops a normal load, so everything after it is invisible until fixed.
type DataFileCheck struct {
	FixableCheck
}

// NewDataFileCheck creates a new data file check.
func NewDataFileCheck() *DataFileCheck {
	return &DataFileCheck{
		FixableCheck: FixableCheck{
			BaseCheck: BaseCheck{
				CheckName:        "data-file",
				CheckDescription: "Verify every record in the users file parses",
			},
		},
	}
}

func (c *DataFileCheck) Run(ctx *CheckContext) *CheckResult {
	if _, err := os.Stat(ctx.DataFile); os.IsNotExist(err) {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusOK,
			Message: "No users file (will be created on first save)",
		}
	}

	recs, err := scanRecords(ctx.DataFile)
	if err != nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: fmt.Sprintf("Cannot read %s: %v", ctx.DataFile, err),
		}
	}

	var details []string
	for _, r := range recs {
		if r.err != nil {
			details = append(details, fmt.Sprintf("line %d: %v", r.line, r.err))
		}
	}
	if len(details) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: fmt.Sprintf("%d of %d records are malformed", len(details), len(recs)),
			Details: details,
			FixHint: fmt.Sprintf("Run 'ecotrack doctor --fix' to move them to %s%s", ctx.DataFile, RejectedSuffix),
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  StatusOK,
		Message: fmt.Sprintf("%d records parse", len(recs)),
	}
}

// Fix moves malformed lines to the rejected file and rewrites the users file
// with the valid records in their original order.
func (c *DataFileCheck) Fix(ctx *CheckContext) error {
	recs, err := scanRecords(ctx.DataFile)
	if err != nil {
		return err
	}

	var kept, rejected strings.Builder
	for _, r := range recs {
		if r.err != nil {
			rejected.WriteString(r.text)
			rejected.WriteByte('\n')
			continue
		}
		kept.WriteString(r.text)
		kept.WriteByte('\n')
	}
	if rejected.Len() == 0 {
		return nil
	}

	rf, err := os.OpenFile(ctx.DataFile+RejectedSuffix, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644) //nolint:gosec // G302: not secret
	if err != nil {
		return err
	}
	if _, err := rf.WriteString(rejected.String()); err != nil {
		rf.Close()
		return err
	}
	if err := rf.Close(); err != nil {
		return err
	}
	return os.WriteFile(ctx.DataFile, []byte(kept.String()), 0644) //nolint:gosec // G306: not secret
}

// DuplicateUsersCheck warns about usernames stored more than once. Lookups
// and switches only ever reach the first of them.
type DuplicateUsersCheck struct {
	BaseCheck
}

// NewDuplicateUsersCheck creates a new duplicate users check.
func NewDuplicateUsersCheck() *DuplicateUsersCheck {
	return &DuplicateUsersCheck{
		BaseCheck: BaseCheck{
			CheckName:        "duplicate-users",
			CheckDescription: "Detect usernames stored more than once",
		},
	}
}

func (c *DuplicateUsersCheck) Run(ctx *CheckContext) *CheckResult {
	recs, err := scanRecords(ctx.DataFile)
	if err != nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: fmt.Sprintf("Cannot read %s: %v", ctx.DataFile, err),
		}
	}

	lines := make(map[string][]string)
	var order []string
	for _, r := range recs {
		if r.err != nil {
			continue
		}
		name := r.user.Username
		if _, seen := lines[name]; !seen {
			order = append(order, name)
		}
		lines[name] = append(lines[name], strconv.Itoa(r.line))
	}

	var details []string
	for _, name := range order {
		if len(lines[name]) > 1 {
			details = append(details, fmt.Sprintf("%s on lines %s", name, strings.Join(lines[name], ", ")))
		}
	}
	if len(details) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusWarning,
			Message: fmt.Sprintf("%d usernames appear more than once", len(details)),
			Details: details,
			FixHint: "Remove the extra copies with 'ecotrack user remove <username>'",
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  StatusOK,
		Message: "All usernames are unique",
	}
}

// StaleTempFilesCheck finds temp files left behind by an interrupted
// atomic save.
type StaleTempFilesCheck struct {
	FixableCheck
}

// NewStaleTempFilesCheck creates a new stale temp files check.
func NewStaleTempFilesCheck() *StaleTempFilesCheck {
	return &StaleTempFilesCheck{
		FixableCheck: FixableCheck{
			BaseCheck: BaseCheck{
				CheckName:        "stale-temp-files",
				CheckDescription: "Find temp files left by interrupted saves",
			},
		},
	}
}

// TempFilePattern is the glob matching atomic save temp files for dataFile.
func TempFilePattern(dataFile string) string {
	return filepath.Join(filepath.Dir(dataFile), "."+filepath.Base(dataFile)+".*.tmp")
}

func (c *StaleTempFilesCheck) Run(ctx *CheckContext) *CheckResult {
	matches, err := filepath.Glob(TempFilePattern(ctx.DataFile))
	if err != nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: err.Error(),
		}
	}
	if len(matches) > 0 {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusWarning,
			Message: fmt.Sprintf("%d stale temp files", len(matches)),
			Details: matches,
			FixHint: "Run 'ecotrack doctor --fix' to remove them",
		}
	}
	return &CheckResult{
		Name:    c.Name(),
		Status:  StatusOK,
		Message: "No stale temp files",
	}
}

// Fix removes every stale temp file.
func (c *StaleTempFilesCheck) Fix(ctx *CheckContext) error {
	matches, err := filepath.Glob(TempFilePattern(ctx.DataFile))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
