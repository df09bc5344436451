package availability

import "github.com/m04kA/SMC-CoachScheduling/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
