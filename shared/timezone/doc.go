// Package timezone pins all calendar arithmetic to the hotel's business-local
// timezone (UTC+7 by default).
//
// The front desk operates on local calendar dates: a reception check-in at
// 06:00 local is still "today" even though the server's UTC clock says
// yesterday 23:00. Every date comparison in the application (check-in date
// guards, attendance date gates, dashboard "today") goes through this package
// rather than time.Now().
//
//   - timezone.Now(): current time in the business timezone
//   - timezone.Today(): current business-local date as YYYY-MM-DD
//   - timezone.Parse(): parse a date string in the business timezone
//
// The zone is configured via APP_TIMEZONE using an IANA name; it defaults to
// Asia/Ho_Chi_Minh and falls back to a fixed UTC+7 offset if the tzdata name
// cannot be loaded.
package timezone
