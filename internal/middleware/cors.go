package middleware

import "net/http"

const allowedHeaders = "X-CSRF-Token, X-Requested-With, Accept, Accept-Version, " +
	"Content-Length, Content-MD5, Content-Type, Date, X-Api-Version"

// CORS sets the cross-origin headers the frontend contract requires on every
// response and answers preflight requests with an empty 200.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET,OPTIONS,PATCH,DELETE,POST,PUT")
		h.Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
