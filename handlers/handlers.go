package handlers

import (
	"github.com/vikalpis/scroll-app/service"
)

// Handler bundles the services the HTTP surface is built on. Media
// is nil when object storage is not configured.
type Handler struct {
	Auth     *service.Auth
	Catalog  *service.Catalog
	Media    *service.Media
	Sessions service.SessionProvider
}
