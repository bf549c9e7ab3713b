// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the admin endpoints.

# Admin Keys

When ADMIN_KEY is configured, roster changes, the audit log and the export
require the X-Admin-Key header:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)

Both values are hashed with SHA-256 before a constant-time comparison, so
neither timing nor length leaks the configured key.

Operators can mint a key with:

	key, err := auth.GenerateAdminKey()

or by running the server with -gen-admin-key.

# Voters

Voters are not authenticated. They are identified only by network address
(see middleware.GetClientIP), so a shared network gets one vote.
*/
package auth
