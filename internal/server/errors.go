// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when no handler has a
	// matching listen address.
	errNoServersAreCreated = errors.New("no HTTP or gRPC server could be created")
	errNoServersToRun      = errors.New("server has nothing to run")
)
