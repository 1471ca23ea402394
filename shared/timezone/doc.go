// Package timezone holds the operating timezone of the delivery business.
//
// Every civil-date computation (booking window, weekday checks, sheet dates)
// goes through this location so that dates are never compared UTC-naively.
//
// Usage Examples:
//
//  1. Current time in the operating timezone:
//     now := timezone.Now()
//
//  2. Formatting and parsing:
//     formatted := timezone.Format(time.Now(), "2006-01-02")
//     t, err := timezone.Parse("2006-01-02", "2024-06-12")
//
//  3. Getting the location:
//     loc := timezone.GetLocation()
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use IANA names such as
// "America/New_York".
package timezone
