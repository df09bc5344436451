package pricing

import "github.com/m04kA/SMC-CoachScheduling/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
