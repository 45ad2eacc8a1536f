// Package logger provides a small log/slog factory plus attribute
// helpers for the acquisition domain.
//
// The acquisition pipeline itself never logs - every failure surfaces
// as a typed error, and visibility comes from the caller. This package
// is what callers plug into fetch.WithOnAttempt:
//
//	log := logger.New(logger.WithDevelopment("importer"))
//	acquirer := fetch.NewAcquirer(fetch.WithOnAttempt(func(r fetch.AttemptResult) {
//	    log.Debug("fetch attempt",
//	        logger.URL(r.URL),
//	        logger.Attempt(r.Attempt),
//	        logger.Duration(r.Duration),
//	        logger.Error(r.Err),
//	    )
//	}))
package logger
