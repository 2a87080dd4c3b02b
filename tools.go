//go:build tools

package smartcode

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
