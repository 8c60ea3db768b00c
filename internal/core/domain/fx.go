package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the reporting currency every invoice is converted into.
const BaseCurrency = "USD"

// FXDateLayout is the calendar-date format used for rate lookups and fxDate.
const FXDateLayout = "2006-01-02"

// FXSource tags which strategy of the fallback chain produced a rate.
type FXSource string

const (
	FXSourceNative          FXSource = "native"
	FXSourceCache           FXSource = "cache"
	FXSourceAPI             FXSource = "api"
	FXSourceCacheFallback   FXSource = "cache-fallback"
	FXSourceAPIFallback     FXSource = "api-fallback"
	FXSourceAltAPIFallback  FXSource = "alt-api-fallback"
	FXSourceCurrentFallback FXSource = "current-fallback"
	FXSourceErrorFallback   FXSource = "error-fallback"
)

// IsDegraded is true for sources that are not tied to the invoice's issue date window.
func (s FXSource) IsDegraded() bool {
	switch s {
	case FXSourceAltAPIFallback, FXSourceCurrentFallback, FXSourceErrorFallback:
		return true
	}
	return false
}

// IsValid reports whether s is one of the known provenance tags.
func (s FXSource) IsValid() bool {
	switch s {
	case FXSourceNative, FXSourceCache, FXSourceAPI, FXSourceCacheFallback, FXSourceAPIFallback,
		FXSourceAltAPIFallback, FXSourceCurrentFallback, FXSourceErrorFallback:
		return true
	}
	return false
}

// FormatFXDate renders t as a UTC calendar date.
func FormatFXDate(t time.Time) string {
	return t.UTC().Format(FXDateLayout)
}

// RateKey identifies a cached rate.
type RateKey struct {
	From string
	To   string
	Date string // YYYY-MM-DD
}

// NewRateKey builds the cache key for a pair on the calendar day of date.
func NewRateKey(from, to string, date time.Time) RateKey {
	return RateKey{From: from, To: to, Date: FormatFXDate(date)}
}

func (k RateKey) String() string {
	return fmt.Sprintf("%s-%s-%s", k.From, k.To, k.Date)
}

// CachedRate is the value stored under a RateKey.
type CachedRate struct {
	Rate decimal.Decimal `json:"rate"`
	Date string          `json:"date"`
}

// ResolvedRate is the outcome of walking the fallback chain for one pair and date.
// Rate expresses "1 unit of from = Rate units of to".
type ResolvedRate struct {
	Rate   decimal.Decimal `json:"rate"`
	Date   string          `json:"date"`
	Source FXSource        `json:"source"`
}

// FXFields are the four invoice fields written back after a conversion.
type FXFields struct {
	USDAmount decimal.Decimal `json:"usdAmount"`
	FXRate    decimal.Decimal `json:"fxRate"`
	FXDate    string          `json:"fxDate"`
	FXSource  FXSource        `json:"fxSource"`
}

// ConversionOutcome classifies what EnsureUSDConversion did to an invoice.
type ConversionOutcome string

const (
	// OutcomeAlreadyConverted: the invoice already carried a valid rate; nothing was called.
	OutcomeAlreadyConverted ConversionOutcome = "already_converted"
	// OutcomeConverted: native, cached or issue-date-window rate applied.
	OutcomeConverted ConversionOutcome = "converted"
	// OutcomeDegraded: a current, alternative or neutral rate was applied.
	OutcomeDegraded ConversionOutcome = "degraded"
	// OutcomeUnconverted: nothing applied; the invoice is returned as it came in.
	OutcomeUnconverted ConversionOutcome = "unconverted"
)

// ConversionResult is the typed result of a conversion attempt. It never carries an error:
// failures are reported through Outcome and Reason and the invoice is always usable.
type ConversionResult struct {
	Invoice   Invoice
	Outcome   ConversionOutcome
	Persisted bool
	Reason    string
}

// HasUSDAmount is true when the returned invoice carries a USD figure.
func (r ConversionResult) HasUSDAmount() bool {
	return r.Outcome != OutcomeUnconverted && r.Invoice.USDAmount != nil
}
