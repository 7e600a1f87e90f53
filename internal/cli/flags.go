package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateValue is a pflag.Value for YYYY-MM-DD flags. Parsing eagerly means
// a typoed date fails at flag parsing instead of deep inside a use case.
type dateValue struct {
	set bool
	t   time.Time
}

func (d *dateValue) String() string {
	if !d.set {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d *dateValue) Set(v string) error {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return fmt.Errorf("expected YYYY-MM-DD, got %q", v)
	}
	d.t = t
	d.set = true
	return nil
}

func (d *dateValue) Type() string { return "date" }

// Time returns the parsed date, or nil when the flag was not given.
func (d *dateValue) Time() *time.Time {
	if !d.set {
		return nil
	}
	t := d.t
	return &t
}

// dateVar registers a YYYY-MM-DD flag on fs and returns its value.
func dateVar(fs *pflag.FlagSet, name, usage string) *dateValue {
	v := &dateValue{}
	fs.Var(v, name, usage)
	return v
}

// friendlyReportError rewrites the invalid-period rejection into an
// actionable message; everything else passes through for uniform handling.
func friendlyReportError(err error) error {
	var re *app.ReportError
	if errors.As(err, &re) && re.Code == app.ReportErrInvalidPeriod {
		return fmt.Errorf("invalid period: the start date is after the end date; swap --from and --to")
	}
	return err
}
