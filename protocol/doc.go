// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package protocol provides the two well-known services shipped with the
// harness, expressed through the api lifecycle contract: discard (accept,
// drop everything, no reply) and daytime (reply with a human-readable
// current-time string, then the engine releases the connection).
package protocol
