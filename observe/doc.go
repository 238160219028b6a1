// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package observe provides api.Observer implementations: a no-op, a
// func adapter, a slog-backed logger and a metrics counter sink. None
// of them run unless explicitly injected at ring construction.
package observe
