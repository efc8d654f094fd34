package services

import (
	"strconv"
	"time"
)

// Cache key grammar. The literal prefixes are a compatibility contract: any
// process sharing cached data must build keys byte-for-byte the same way.
// Key ownership:
//
//	allCurrencies, allCurrenciesFromDb, currency:<id>, rate:<id>:<date>
//	    owned by currencyService; wiped wholesale on any currency mutation.
//	rateById:<id>, rates:<abbr>:<date>, allRates, convert:<from>:<to>:<amount>
//	    owned by conversionService; rate mutations invalidate only the
//	    mutated rate's own keys.
const (
	keyAllCurrencies       = "allCurrencies"
	keyAllCurrenciesFromDB = "allCurrenciesFromDb"
	keyAllRates            = "allRates"
)

// cacheDateFormat renders calendar dates inside cache keys.
const cacheDateFormat = "2006-01-02"

func currencyKey(id int) string {
	return "currency:" + strconv.Itoa(id)
}

func rateKey(currencyID int, date time.Time) string {
	return "rate:" + strconv.Itoa(currencyID) + ":" + date.Format(cacheDateFormat)
}

func rateByIDKey(id int64) string {
	return "rateById:" + strconv.FormatInt(id, 10)
}

func ratesKey(abbreviation string, date time.Time) string {
	return "rates:" + abbreviation + ":" + date.Format(cacheDateFormat)
}

// convertKey memoizes on the literal amount text, not its numeric value:
// "1" and "1.00" are distinct entries.
func convertKey(fromID, toID int, amountText string) string {
	return "convert:" + strconv.Itoa(fromID) + ":" + strconv.Itoa(toID) + ":" + amountText
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
