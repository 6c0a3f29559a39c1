// Package database opens the run history database and inspects its schema.
//
// Connect wraps gorm. SQLite is the default driver so the CLI needs no
// server; the path may start with "~" and parent directories are created on
// the way. MySQL serves shared deployments. Both drivers get pool limits and
// a startup ping.
//
// GetTableColumns lists a table's columns with normalized types. The history
// feature runs it after migration to catch schema drift left behind by older
// versions of the tool.
//
//	db, err := database.Connect(cfg.Database)
//	cols, err := database.GetTableColumns(db, "comparison_runs")
package database
