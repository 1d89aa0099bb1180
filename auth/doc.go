// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth generates tabulation IDs and admin keys.

# Tabulation IDs

Every stored count gets a random UUID:

	id := auth.GenerateID()

ValidateID rejects anything that is not a UUID before it reaches the
database.

# Admin Keys

Admin keys are derived from the tabulation ID with HMAC-SHA256, so they
never need to be stored:

	key := auth.GenerateAdminKey(id, cfg.AdminKeySalt)

	if err := auth.ValidateAdminKey(id, key, cfg.AdminKeySalt); err != nil {
		// ErrInvalidAdminKey
	}

The key is returned once, when the tabulation is created, and is required
in the X-Admin-Key header to delete it. Comparison is constant time.
*/
package auth
