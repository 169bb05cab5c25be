package build

import (
	"os"

	"github.com/sbopak/sbopak/pkg/errors"
)

// geteuid is swapped out in tests.
var geteuid = os.Geteuid

// CheckPrivilege fails when the process lacks the privilege level the build,
// install and remove operations need. It is called eagerly, before any
// mutating work starts.
func CheckPrivilege() error {
	if geteuid() != 0 {
		return errors.Wrap(errors.ErrPrivilege, "this operation must be run as root")
	}
	return nil
}
