// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the admin routes.

# Admin Key

When ADMIN_KEY is configured, POST /processAdminGFA and
POST /processAdminRemove require it:

	key := auth.AdminKeyFromRequest(r)
	if err := auth.ValidateAdminKey(key, cfg.AdminKey); err != nil {
		// 401
	}

The key is read from the X-Admin-Key header, or from the admin_key form
field that the admin pages render. Keys are compared as SHA-256 digests in
constant time.

With no key configured every request passes, which keeps the admin pages
usable from a plain browser during development.
*/
package auth
