package fx

import (
	"github.com/fanhubapp/fanhub-client/internal/repositories/viewhistory"
	"go.uber.org/fx"
)

var Module = fx.Options(
	viewhistory.Module,
)
