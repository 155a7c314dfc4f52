// Package locale renders dates and amounts the way the account holder reads them.
package locale

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLanguage is used when no display language is configured.
var DefaultLanguage = language.Spanish

// Formatter formats values for one time zone and language.
type Formatter struct {
	loc     *time.Location
	printer *message.Printer
	tag     language.Tag
}

// NewFormatter creates a formatter. A nil location means time.Local.
func NewFormatter(loc *time.Location, tag language.Tag) Formatter {
	if loc == nil {
		loc = time.Local
	}
	return Formatter{
		loc:     loc,
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// Location returns the display time zone.
func (f Formatter) Location() *time.Location {
	return f.loc
}

// Language returns the display language.
func (f Formatter) Language() language.Tag {
	return f.tag
}

// Date renders dd/mm/yyyy in the display zone.
func (f Formatter) Date(t time.Time) string {
	return t.In(f.loc).Format("02/01/2006")
}

// Time renders a 24h HH:MM clock in the display zone.
func (f Formatter) Time(t time.Time) string {
	return t.In(f.loc).Format("15:04")
}

// UTCOffset renders the zone offset as "UTC +3" or "UTC -3:30".
func (f Formatter) UTCOffset(t time.Time) string {
	_, offset := t.In(f.loc).Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	minutes := offset / 60
	hours, rest := minutes/60, minutes%60
	if rest > 0 {
		return fmt.Sprintf("UTC %s%d:%02d", sign, hours, rest)
	}
	return fmt.Sprintf("UTC %s%d", sign, hours)
}

// FullDateTime joins date, time and offset.
func (f Formatter) FullDateTime(t time.Time) string {
	return f.Date(t) + " " + f.Time(t) + " " + f.UTCOffset(t)
}

// Amount renders a value with two decimals followed by its currency code.
func (f Formatter) Amount(v float64, currency string) string {
	formatted := f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	if currency == "" {
		return formatted
	}
	return formatted + " " + currency
}

// Integer renders a value rounded to a whole number with grouping.
func (f Formatter) Integer(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// RawNumber renders the shortest plain decimal for v, e.g. 1250 or 37.5.
func RawNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseLanguage parses a BCP 47 tag, falling back to DefaultLanguage when empty.
func ParseLanguage(s string) (language.Tag, error) {
	if s == "" {
		return DefaultLanguage, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", s, err)
	}
	return tag, nil
}

// LoadLocation resolves a zone name; "" and "Local" mean the system zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", name, err)
	}
	return loc, nil
}
