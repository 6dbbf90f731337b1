// Package middleware groups the Fiber middleware mounted in front of the grid
// and integrity routes.
//
//   - rayid: tags each request with an X-Ray-ID (taken from the request or
//     generated) so grid cycle logs can be matched to the call that caused them.
//   - auth: rejects requests without the configured API key. An empty key
//     disables the check, which is how local simulations run.
//
// Register rayid first, then request logging, then auth. Swagger is mounted
// before auth so the docs stay public.
package middleware
