// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means neither a HTTP nor a gRPC address is set.
var errNoHandlersAreCreated = errors.New("no listen address configured for HTTP or gRPC")
