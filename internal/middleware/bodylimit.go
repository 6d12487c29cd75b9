package middleware

import "net/http"

// maxRequestBody caps request bodies at the boundary, before any JSON
// decoding. The content cap is 1,000,000 characters; the extra headroom
// covers JSON framing and escaping around the content field.
const maxRequestBody = 2 << 20 // 2 MiB

// BodyLimit rejects oversized request bodies early. Reads past the cap
// make the decoder fail with http.MaxBytesError, which handlers report
// as an oversize-content error instead of streaming the whole payload.
func BodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		}
		next.ServeHTTP(w, r)
	})
}
