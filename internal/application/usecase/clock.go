package usecase

import "time"

// nowUTC is replaced in tests that need a fixed clock.
var nowUTC = func() time.Time { return time.Now().UTC() }
