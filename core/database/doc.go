// Package database manages the connection to the run history database.
//
// It uses GORM with either the SQLite driver (the default, a local file) or MySQL
// for a shared ledger. History is optional: when Connect fails the fetch run
// still proceeds and only logs a warning.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("history disabled", zap.Error(err))
//	}
package database
