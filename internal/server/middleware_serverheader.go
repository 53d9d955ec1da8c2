// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package server

import "net/http"

func (s *Server) serverHeader(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", "chronoping/"+s.version)
		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
