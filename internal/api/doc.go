// Learning Path Advisor Pro - Course Path Search and Recommendation Engine
// Copyright 2026 NeoAstra (neoastra303)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/neoastra303/learning-path-advisor-pro

// Package api provides the HTTP surface of the advisor: request
// validation structs, handlers for path search, recommendations and
// catalog browsing, and the Chi router wiring with CORS, rate limiting
// and Prometheus instrumentation.
//
// All endpoints respond with the models.APIResponse envelope. Expensive
// engine operations (path search, recommendations) run through the
// single-flight result cache keyed on the normalized request.
package api
