//
// Tencent is pleased to support the open source community by making trpc-namespace-router available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-namespace-router is licensed under the Apache License Version 2.0.
//
//

package server

// Option is a function that configures a Server.
type Option func(*Server)

// WithAddr sets the listen address, ":8080" by default.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}
