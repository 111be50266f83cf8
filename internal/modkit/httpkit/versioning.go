package httpkit

import (
	"net/http"
	"strings"
)

// APIPrefix is the root of every JSON endpoint
const APIPrefix = "/api"

// MountAPI mounts a subrouter under /api, applies mw, then invokes mount on that scope
//
// example:
//
//	httpkit.MountAPI(r, httpkit.CommonStack(httpkit.StackOptions{}), func(api httpkit.Router) {
//	  httpkit.Version(api, "v1", func(v1 httpkit.Router) { convert.MountRoutes(v1) })
//	})
func MountAPI(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(APIPrefix, func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// Version scopes fn under /{version} inside an api router
func Version(api Router, version string, fn func(Router)) {
	api.Route("/"+strings.Trim(version, "/"), fn)
}
