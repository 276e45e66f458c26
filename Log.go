package Go_Collections

import "github.com/sirupsen/logrus"

// Log receives the diagnostics of every container in this module. Soft failures
// (unknown ids, refused removals, absent arguments) are reported at Warn level.
var Log = logrus.New()

func init() {
	Log.SetLevel(logrus.WarnLevel)
}
