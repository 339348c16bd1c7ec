// Package attribution resolves marketing attribution (UTM tags and referring
// origin) from an inbound request and renders it back as response cookies.
//
// Precedence per request:
//   - each UTM dimension comes from its utm_* query parameter when present,
//     even if empty, falling back to the matching u_* cookie
//   - the origin is the stored u_from cookie when present, otherwise the
//     Referer header, otherwise DirectOrigin
//   - the capture time and landing page always describe the current request
//
// A request that carries no UTM value, no Referer and no stored origin
// resolves to the zero record and leaves the client's cookies untouched.
//
// The package knows nothing about routers; the gin middleware in
// internal/adapters/http/middleware wires it into the request chain.
package attribution
