package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tedn/configs"
	"github.com/reusee/tedn/logs"
)

// Module provides the HTTP client for remote documents.
// ProxyAddr comes from configs.Loader, which the including scope provides.
type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
