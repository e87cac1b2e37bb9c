package b64url

import (
	"github.com/autodesk-tandem/tandem-keys/lol"
)

var log, chk, errorf = lol.Main.Log, lol.Main.Check, lol.Main.Errorf
